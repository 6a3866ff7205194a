package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

	value, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("abc")))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	value[0] = 'x'

	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_WatchFiresOnSet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	var seen [][]byte
	cancel, err := store.Watch("signal", func(value []byte) {
		seen = append(seen, value)
	})
	require.NoError(t, err)
	defer cancel()

	// Memory watches are dispatched synchronously inside Set, no waiting
	// needed.
	require.NoError(t, store.Set(ctx, "signal", []byte("one")))
	require.NoError(t, store.Set(ctx, "other", []byte("ignored")))
	require.NoError(t, store.Set(ctx, "signal", []byte("two")))

	require.Len(t, seen, 2)
	assert.Equal(t, []byte("one"), seen[0])
	assert.Equal(t, []byte("two"), seen[1])
}

func TestMemoryStore_CancelStopsDelivery(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	calls := 0
	cancel, err := store.Watch("signal", func([]byte) { calls++ })
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "signal", []byte("first")))
	cancel()
	require.NoError(t, store.Set(ctx, "signal", []byte("second")))

	assert.Equal(t, 1, calls)
}

func TestMemoryStore_ClosedRejectsWrites(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	err := store.Set(context.Background(), "key", []byte("value"))
	assert.Error(t, err)

	_, err = store.Watch("key", func([]byte) {})
	assert.Error(t, err)
}
