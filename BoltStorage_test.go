package main

import (
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"path/filepath"
	"testing"
)

func _createTmpDb(t *testing.T) *bbolt.DB {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "data.db"), 0600, nil)
	require.NoError(t, err)
	return db
}

func TestBoltStorage(t *testing.T) {
	t.Run("empty database", func(t *testing.T) {
		storage := NewBoltStorage(_createTmpDb(t))
		defer storage.Close()

		document, err := storage.Load()
		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("save and load", func(t *testing.T) {
		storage := NewBoltStorage(_createTmpDb(t))
		defer storage.Close()

		document := contracts.DefaultGridDocument()
		require.NoError(t, storage.Save(document))

		document.Headers[0] = "Renamed"
		require.NoError(t, storage.Save(document))

		loaded, err := storage.Load()
		assert.NoError(t, err)
		assert.Equal(t, document, loaded)
	})

	t.Run("corrupted value", func(t *testing.T) {
		db := _createTmpDb(t)
		storage := NewBoltStorage(db)
		defer storage.Close()

		require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists(documentsBucket)
			if err != nil {
				return err
			}
			return bucket.Put(gridDocumentKey, []byte("[1, 2"))
		}))

		document, err := storage.Load()
		assert.Error(t, err)
		assert.Nil(t, document)
	})
}
