package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("workspaces", "user-1", []byte(`{"a":1}`)))

	data, err := store.Get("workspaces", "user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	keys, err := store.List("workspaces")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, keys)

	require.NoError(t, store.Delete("workspaces", "user-1"))
	_, err = store.Get("workspaces", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStoreMissingDocument(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("workspaces", "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent document is a no-op
	assert.NoError(t, store.Delete("workspaces", "absent"))

	keys, err := store.List("empty-collection")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFSStoreRejectsTraversal(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Put("..", "key", nil))
	assert.Error(t, store.Put("coll", "../escape", nil))
	assert.Error(t, store.Put("coll", "a/b", nil))
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()

	require.NoError(t, store.Put("prefs", "user-1", []byte(`{"color":"#002b41"}`)))

	data, err := store.Get("prefs", "user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#002b41"}`, string(data))

	// Mutating the returned slice must not affect stored state
	data[0] = 'x'
	again, err := store.Get("prefs", "user-1")
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again[0])

	require.NoError(t, store.Delete("prefs", "user-1"))
	_, err = store.Get("prefs", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
