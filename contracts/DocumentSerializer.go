package contracts

import "errors"

type DocumentSerializer interface {
	Marshal(document StoredDocument) []byte
	Unmarshal([]byte) (StoredDocument, error)
}

var SerializerError = errors.New("invalid serialized data")
