package main

import (
	"encoding/binary"
	"fmt"
	"tabularDataEditor/contracts"
)

// DocumentBinarySerializer stores a document as two length-prefixed strings (name and
// delimiter), a header flag byte and the raw text.
type DocumentBinarySerializer struct {
}

func NewDocumentBinarySerializer() *DocumentBinarySerializer {
	return &DocumentBinarySerializer{}
}

func (s *DocumentBinarySerializer) Marshal(document contracts.StoredDocument) []byte {
	nameBytes := []byte(document.Name)
	delimiterBytes := []byte(document.Delimiter)

	serializedData := make([]byte, 0, 5+len(nameBytes)+len(delimiterBytes)+len(document.Text))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(nameBytes)))
	serializedData = append(serializedData, nameBytes...)
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(delimiterBytes)))
	serializedData = append(serializedData, delimiterBytes...)
	if document.Header {
		serializedData = append(serializedData, 1)
	} else {
		serializedData = append(serializedData, 0)
	}
	serializedData = append(serializedData, []byte(document.Text)...)
	return serializedData
}

func (s *DocumentBinarySerializer) Unmarshal(data []byte) (document contracts.StoredDocument, err error) {
	var rest []byte
	document.Name, rest, err = readPrefixed(data, "name")
	if err != nil {
		return contracts.StoredDocument{}, err
	}

	document.Delimiter, rest, err = readPrefixed(rest, "delimiter")
	if err != nil {
		return contracts.StoredDocument{}, err
	}

	if len(rest) < 1 {
		return contracts.StoredDocument{}, fmt.Errorf("%w: header flag is missing", contracts.SerializerError)
	}

	document.Header = rest[0] == 1
	document.Text = string(rest[1:])
	return
}

func readPrefixed(data []byte, field string) (string, []byte, error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("%w: %s: should be at least 2 bytes (data: %v)", contracts.SerializerError, field, string(data))
	}

	length := int(binary.LittleEndian.Uint16(data))
	if len(data) < length+2 {
		return "", nil, fmt.Errorf("%w: %s size is less than bytes amount (size: %d; data: %v)", contracts.SerializerError, field, length, string(data))
	}

	return string(data[2 : length+2]), data[length+2:], nil
}
