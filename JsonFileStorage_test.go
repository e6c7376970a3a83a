package main

import (
	"github.com/BeiChenYi/webbapi/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJsonFileStorage(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		storage := NewJsonFileStorage(filepath.Join(t.TempDir(), "data.json"))

		document, err := storage.Load()
		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		storage := NewJsonFileStorage(path)
		document := contracts.DefaultGridDocument()
		document.Data[2][1] = "值"

		require.NoError(t, storage.Save(document))

		loaded, err := storage.Load()
		assert.NoError(t, err)
		assert.Equal(t, document, loaded)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "{\n  \"rows\": 5,"), "document is written indented")

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files are cleaned up")
	})

	t.Run("overwrite", func(t *testing.T) {
		storage := NewJsonFileStorage(filepath.Join(t.TempDir(), "data.json"))

		require.NoError(t, storage.Save(contracts.DefaultGridDocument()))
		smaller := &contracts.GridDocument{Rows: 1, Cols: 1, Headers: []string{"A"}, Data: [][]string{{"x"}}}
		require.NoError(t, storage.Save(smaller))

		loaded, err := storage.Load()
		assert.NoError(t, err)
		assert.Equal(t, smaller, loaded)
	})

	t.Run("corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		document, err := NewJsonFileStorage(path).Load()
		assert.Error(t, err)
		assert.Nil(t, document)
	})

	t.Run("write failure", func(t *testing.T) {
		storage := NewJsonFileStorage(filepath.Join(t.TempDir(), "missing", "data.json"))

		assert.Error(t, storage.Save(contracts.DefaultGridDocument()))
	})
}
