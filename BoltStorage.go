package main

import (
	"fmt"
	"github.com/BeiChenYi/webbapi/contracts"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
)

var documentsBucket = []byte("documents")

var gridDocumentKey = []byte("grid")

// BoltStorage keeps the JSON document as a single value of a bbolt database.
type BoltStorage struct {
	db *bbolt.DB
}

func NewBoltStorage(db *bbolt.DB) *BoltStorage {
	return &BoltStorage{db: db}
}

func (s *BoltStorage) Load() (document *contracts.GridDocument, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(documentsBucket)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(gridDocumentKey)
		if data == nil {
			return nil
		}

		// strings must not alias the mmap'ed page once the transaction ends
		document = &contracts.GridDocument{}
		if err := json.ConfigStd.Unmarshal(data, document); err != nil {
			document = nil
			return fmt.Errorf("decode %s/%s: %w", documentsBucket, gridDocumentKey, err)
		}
		return nil
	})

	return
}

func (s *BoltStorage) Save(document *contracts.GridDocument) error {
	data, err := json.Marshal(document)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(documentsBucket)
		if err != nil {
			return err
		}

		return bucket.Put(gridDocumentKey, data)
	})
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}
