package main

import (
	"fmt"
	"strings"
	"tabularDataEditor/contracts"

	"go.etcd.io/bbolt"
)

var documentsBucket = []byte("documents")

// DocumentRepository keeps saved documents in one bbolt bucket keyed by lower-cased id.
type DocumentRepository struct {
	db         *bbolt.DB
	serializer contracts.DocumentSerializer
}

func NewDocumentRepository(db *bbolt.DB, serializer contracts.DocumentSerializer) *DocumentRepository {
	return &DocumentRepository{
		db:         db,
		serializer: serializer,
	}
}

func (r *DocumentRepository) Save(documentId string, document contracts.StoredDocument) error {
	key := []byte(strings.ToLower(documentId))
	serializedData := r.serializer.Marshal(document)

	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(documentsBucket)
		if err != nil {
			return err
		}

		return bucket.Put(key, serializedData)
	})
}

func (r *DocumentRepository) Load(documentId string) (document *contracts.StoredDocument, err error) {
	documentId = strings.ToLower(documentId)

	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(documentsBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", documentId, contracts.DocumentNotFoundError)
		}

		byteValue := bucket.Get([]byte(documentId))
		if byteValue == nil {
			return fmt.Errorf("%s: %w", documentId, contracts.DocumentNotFoundError)
		}

		stored, err := r.serializer.Unmarshal(byteValue)
		if err != nil {
			return fmt.Errorf("%s: %w", documentId, err)
		}

		document = &stored
		return nil
	})

	return
}

func (r *DocumentRepository) Delete(documentId string) error {
	key := []byte(strings.ToLower(documentId))

	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(documentsBucket)
		if bucket == nil || bucket.Get(key) == nil {
			return fmt.Errorf("%s: %w", documentId, contracts.DocumentNotFoundError)
		}

		return bucket.Delete(key)
	})
}

// List returns stored ids in key order.
func (r *DocumentRepository) List() ([]string, error) {
	ids := make([]string, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(documentsBucket)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			ids = append(ids, string(k))
		}
		return nil
	})

	return ids, err
}
