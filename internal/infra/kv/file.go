package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"storefront/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// fileStore keeps one file per key under a shared directory. Cross-context
// change delivery rides on fsnotify: every context watches the directory and
// re-reads the touched file. Writes go through a temp file plus rename so a
// watcher never observes a half-written value.
type fileStore struct {
	dir     string
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	watches  map[string][]*fileWatch
	nextID   uint64
	closed   bool
	done     chan struct{}
}

type fileWatch struct {
	id uint64
	fn func(value []byte)
}

// NewFileStore opens (creating if needed) the directory-backed store at dir.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fs watcher")
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()

		return nil, errors.Wrap(err, "watch state dir")
	}

	s := &fileStore{
		dir:     dir,
		watcher: watcher,
		watches: make(map[string][]*fileWatch),
		done:    make(chan struct{}),
	}
	go s.run()

	return s, nil
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %s", key)
	}

	return data, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrapf(err, "write key %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrapf(err, "close key %s", key)
	}

	return errors.Wrapf(os.Rename(tmpName, target), "commit key %s", key)
}

func (s *fileStore) Watch(key string, fn func(value []byte)) (CancelWatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("store is closed")
	}

	s.nextID++
	w := &fileWatch{id: s.nextID, fn: fn}
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

func (s *fileStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}
	s.closed = true
	s.mu.Unlock()

	err := s.watcher.Close()
	<-s.done

	return errors.Wrap(err, "close fs watcher")
}

// run pumps fsnotify events into key watchers until the watcher closes.
func (s *fileStore) run() {
	defer close(s.done)

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(event.Name)
			if strings.HasPrefix(name, ".tmp-") {
				continue
			}
			s.dispatch(strings.TrimSuffix(name, ".json"))

		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next Set still lands
			// on disk and a Get sees it.
		}
	}
}

func (s *fileStore) dispatch(key string) {
	s.mu.Lock()
	list := make([]*fileWatch, len(s.watches[key]))
	copy(list, s.watches[key])
	s.mu.Unlock()

	if len(list) == 0 {
		return
	}

	value, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}
	for _, w := range list {
		w.fn(value)
	}
}

func (s *fileStore) path(key string) string {
	// Keys are flat names; anything path-like is flattened to keep every
	// value inside the watched directory.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")

	return filepath.Join(s.dir, safe+".json")
}
