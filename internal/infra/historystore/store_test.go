package historystore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "history.json"))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	store := New(path)

	require.NoError(t, store.Save([]string{"ls -la", "echo hi"}))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"ls -la", "echo hi"}, entries)
	assert.Equal(t, path, store.Path())

	// The temp file does not survive the rename.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveReplaces(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "history.json"))

	require.NoError(t, store.Save([]string{"a", "b"}))
	require.NoError(t, store.Save([]string{"c"}))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, entries)
}

func TestStore_SaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := New(path)

	require.NoError(t, store.Save(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(content))
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse history file")
}

func TestStore_ConcurrentSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, New(path).Save([]string{"echo same"}))
		}()
	}
	wg.Wait()

	entries, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"echo same"}, entries)
}
