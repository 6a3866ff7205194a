package sync

import (
	"context"

	"storefront/internal/infra/kv"

	"github.com/pkg/errors"
)

// signalKey is the single key all contexts watch for change envelopes.
const signalKey = "sync_events"

// kvTransport rides the durable key-value medium. Broadcast overwrites the
// signal key; every watcher of the key, in this process or another, observes
// the write. Only the latest envelope is retained, which is fine: consumers
// refetch state on any signal rather than replaying history.
type kvTransport struct {
	store     kv.Store
	ownsStore bool
	cancels   []kv.CancelWatch
}

// NewKVTransport creates a transport over the given medium. When ownsStore
// is set the medium is closed together with the transport.
func NewKVTransport(store kv.Store, ownsStore bool) Transport {
	return &kvTransport{
		store:     store,
		ownsStore: ownsStore,
	}
}

func (t *kvTransport) Broadcast(ctx context.Context, data []byte) error {
	if err := t.store.Set(ctx, signalKey, data); err != nil {
		return errors.Wrap(err, "failed to write sync signal")
	}

	return nil
}

func (t *kvTransport) Listen(fn func(data []byte)) error {
	cancel, err := t.store.Watch(signalKey, fn)
	if err != nil {
		return errors.Wrap(err, "failed to watch sync signal")
	}
	t.cancels = append(t.cancels, cancel)

	return nil
}

func (t *kvTransport) Close() error {
	for _, cancel := range t.cancels {
		cancel()
	}
	if t.ownsStore {
		return t.store.Close()
	}

	return nil
}
