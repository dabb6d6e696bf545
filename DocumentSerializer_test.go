package main

import (
	"github.com/stretchr/testify/assert"
	"tabularDataEditor/contracts"
	"testing"
)

func TestDocumentBinarySerializer_Marshal(t *testing.T) {
	serializer := &DocumentBinarySerializer{}
	serialized := serializer.Marshal(contracts.StoredDocument{Name: "people.csv", Delimiter: ",", Text: "a,b\n"})
	assert.NotNil(t, serialized)
	assert.Equal(t, 2+10+2+1+1+4, len(serialized))
}

func TestDocumentBinarySerializer_Unmarshal(t *testing.T) {
	serializer := &DocumentBinarySerializer{}

	t.Run("valid_data", func(t *testing.T) {
		assertMarshalAndUnmarshal := func(expected contracts.StoredDocument) {
			serialized := serializer.Marshal(expected)
			actual, err := serializer.Unmarshal(serialized)

			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}

		assertMarshalAndUnmarshal(contracts.StoredDocument{Name: "people.csv", Delimiter: ",", Header: true, Text: "name,age\nann,31\n"})
		assertMarshalAndUnmarshal(contracts.StoredDocument{Name: "", Delimiter: "\t", Text: ""})
		assertMarshalAndUnmarshal(contracts.StoredDocument{
			Name:      "quoted.tsv",
			Delimiter: "\t",
			Text:      "\"multi\r\nline\"\tvalue\r\n",
		})
	})

	t.Run("empty_data", func(t *testing.T) {
		document, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, contracts.SerializerError)
		assert.Equal(t, contracts.StoredDocument{}, document)
	})

	t.Run("invalid_data", func(t *testing.T) {
		document, err := serializer.Unmarshal([]byte{' ', 'q', 'r'})

		assert.ErrorIs(t, err, contracts.SerializerError)
		assert.Equal(t, contracts.StoredDocument{}, document)
	})

	t.Run("missing_header_flag", func(t *testing.T) {
		document, err := serializer.Unmarshal([]byte{1, 0, 'a', 1, 0, ','})

		assert.ErrorIs(t, err, contracts.SerializerError)
		assert.Equal(t, contracts.StoredDocument{}, document)
	})

	t.Run("truncated_delimiter", func(t *testing.T) {
		document, err := serializer.Unmarshal([]byte{1, 0, 'a', 5, 0, ','})

		assert.ErrorIs(t, err, contracts.SerializerError)
		assert.Contains(t, err.Error(), "delimiter")
		assert.Equal(t, contracts.StoredDocument{}, document)
	})
}
