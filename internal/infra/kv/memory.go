package kv

import (
	"context"
	"sync"

	"storefront/internal/errors"
)

// memoryStore is a process-local medium. Handing the same instance to several
// notifiers simulates several contexts sharing one medium, which is how the
// cross-context tests run without touching the filesystem.
type memoryStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	watches map[string][]*memoryWatch
	nextID  uint64
	closed  bool
}

type memoryWatch struct {
	id uint64
	fn func(value []byte)
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{
		values:  make(map[string][]byte),
		watches: make(map[string][]*memoryWatch),
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)

	return cp, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return errors.New("store is closed")
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp

	list := make([]*memoryWatch, len(s.watches[key]))
	copy(list, s.watches[key])
	s.mu.Unlock()

	for _, w := range list {
		w.fn(cp)
	}

	return nil
}

func (s *memoryStore) Watch(key string, fn func(value []byte)) (CancelWatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("store is closed")
	}

	s.nextID++
	w := &memoryWatch{id: s.nextID, fn: fn}
	s.watches[key] = append(s.watches[key], w)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		list := s.watches[key]
		for i, cur := range list {
			if cur.id == w.id {
				s.watches[key] = append(list[:i], list[i+1:]...)

				break
			}
		}
	}

	return cancel, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.watches = make(map[string][]*memoryWatch)

	return nil
}
