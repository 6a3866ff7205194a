// Package kv provides the durable key-value medium shared between contexts.
// It backs two concerns: best-effort persistence of the local store's
// collections, and the change signal the sync transport rides on. The file
// implementation is shared across processes; the memory implementation is for
// tests and ephemeral runs.
package kv

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("key not found")

// CancelWatch removes a watch registration. Safe to call more than once.
type CancelWatch func()

// Store is a key-value store whose writes are observable by other holders of
// the same medium, in this process or another one.
type Store interface {
	// Get returns the current value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set durably replaces the value for key. Watchers of key in every
	// context sharing the medium observe the new value.
	Set(ctx context.Context, key string, value []byte) error

	// Watch invokes fn with the new value each time key changes, including
	// changes made by other contexts. fn runs on the store's watch goroutine;
	// it must not block.
	Watch(key string, fn func(value []byte)) (CancelWatch, error)

	// Close stops watch delivery and releases resources.
	Close() error
}
