package kv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

	value, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), value)
}

func TestFileStore_ValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "counter", []byte("42")))
	require.NoError(t, first.Close())

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), value)
}

func TestFileStore_WatchSeesWritesFromAnotherStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writer, err := NewFileStore(dir)
	require.NoError(t, err)
	defer writer.Close()

	reader, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reader.Close()

	var (
		mu   sync.Mutex
		last []byte
	)
	cancel, err := reader.Watch("signal", func(value []byte) {
		mu.Lock()
		last = append([]byte(nil), value...)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, writer.Set(ctx, "signal", []byte("ping")))

	// fsnotify delivery is asynchronous.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return string(last) == "ping"
	}, 3*time.Second, 10*time.Millisecond)
}

func TestFileStore_CancelStopsDelivery(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var (
		mu    sync.Mutex
		calls int
	)
	cancel, err := store.Watch("signal", func([]byte) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "signal", []byte("first")))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return calls >= 1
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	// Give fsnotify a beat to flush anything already queued.
	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	before := calls
	mu.Unlock()

	require.NoError(t, store.Set(ctx, "signal", []byte("second")))
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, before, calls)
}
