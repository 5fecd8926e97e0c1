package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDocument struct {
	Items  []string `json:"items"`
	LastID int      `json:"lastId"`
}

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, dir
}

func TestStoreMissingFileLoadsEmpty(t *testing.T) {
	store, _ := newStore(t)

	var doc testDocument
	err := store.Load("things", &doc)

	assert.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.Zero(t, doc.LastID)
}

func TestStoreCorruptFileLoadsEmpty(t *testing.T) {
	store, dir := newStore(t)

	path := filepath.Join(dir, "things.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var doc testDocument
	err := store.Load("things", &doc)

	assert.NoError(t, err)
	assert.Empty(t, doc.Items)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)

	saved := testDocument{Items: []string{"a", "b"}, LastID: 2}
	assert.NoError(t, store.Save("things", saved))

	var loaded testDocument
	assert.NoError(t, store.Load("things", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	store, dir := newStore(t)

	assert.NoError(t, store.Save("things", testDocument{Items: []string{"a"}}))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "things.json", entries[0].Name())
}

func TestStoreCollectionsAreIndependent(t *testing.T) {
	store, _ := newStore(t)

	assert.NoError(t, store.Save("a", testDocument{Items: []string{"one"}}))
	assert.NoError(t, store.Save("b", testDocument{Items: []string{"two"}}))

	var a, b testDocument
	assert.NoError(t, store.Load("a", &a))
	assert.NoError(t, store.Load("b", &b))
	assert.Equal(t, []string{"one"}, a.Items)
	assert.Equal(t, []string{"two"}, b.Items)
}
