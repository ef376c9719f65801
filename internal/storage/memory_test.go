package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	type record struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	in := []record{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}
	require.NoError(t, store.Set("records", in))

	var out []record
	require.NoError(t, store.Get("records", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore()

	var out string
	err := store.Get("nope", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Delete("k"))

	var out string
	assert.ErrorIs(t, store.Get("k", &out), ErrKeyNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete("k"))
}

func TestReadOr(t *testing.T) {
	store := NewMemoryStore()

	t.Run("falls back on missing key", func(t *testing.T) {
		got := ReadOr(store, "missing", []int{1, 2})
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("returns stored value", func(t *testing.T) {
		require.NoError(t, store.Set("present", []int{3}))
		got := ReadOr(store, "present", []int{1, 2})
		assert.Equal(t, []int{3}, got)
	})

	t.Run("falls back on decode failure", func(t *testing.T) {
		require.NoError(t, store.Set("str", "not a slice"))
		got := ReadOr(store, "str", []int{9})
		assert.Equal(t, []int{9}, got)
	})
}
