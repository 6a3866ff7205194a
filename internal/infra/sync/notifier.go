package sync

import (
	"context"
	"encoding/json"
	"log/slog"
	stdsync "sync"
	"time"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subscriber pairs a registration id with its callback. Dispatch walks the
// slice in append order, so subscribers fire in registration order.
type subscriber struct {
	id uint64
	fn func(kind string, payload json.RawMessage)
}

// Notifier implements service.ChangeNotifier over a Transport. Each notifier
// carries a unique origin id; envelopes observed with its own origin are
// echoes of its own broadcasts and are dropped, since local subscribers
// already saw them at publish time.
type Notifier struct {
	mu        stdsync.Mutex
	subs      []subscriber
	nextID    uint64
	origin    string
	transport Transport
	logger    *slog.Logger
}

// NewNotifier creates a notifier and starts listening on the transport.
func NewNotifier(transport Transport, logger *slog.Logger) (*Notifier, error) {
	notifier := &Notifier{
		origin:    uuid.NewString(),
		transport: transport,
		logger:    logger,
	}

	if err := transport.Listen(notifier.onRemote); err != nil {
		return nil, errors.Wrap(err, "failed to listen on sync transport")
	}

	return notifier, nil
}

// Publish marshals payload into an envelope, delivers it to local
// subscribers in registration order, then broadcasts it. The returned error
// covers the broadcast only.
func (n *Notifier) Publish(ctx context.Context, kind string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s payload", kind)
	}

	event := service.ChangeEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
		Origin:    n.origin,
	}

	n.dispatch(&event)

	data, err := json.Marshal(&event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event envelope")
	}

	if err := n.transport.Broadcast(ctx, data); err != nil {
		return errors.Wrapf(err, "failed to broadcast %s event", kind)
	}

	return nil
}

// Subscribe registers fn for every subsequent event, local or remote.
func (n *Notifier) Subscribe(fn func(kind string, payload json.RawMessage)) *service.Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	n.subs = append(n.subs, subscriber{id: n.nextID, fn: fn})

	return &service.Subscription{ID: n.nextID}
}

// Unsubscribe removes a previous registration. Unknown or nil subscriptions
// are ignored.
func (n *Notifier) Unsubscribe(sub *service.Subscription) {
	if sub == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for i, registered := range n.subs {
		if registered.id == sub.ID {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)

			return
		}
	}
}

// dispatch invokes every subscriber with the event. The subscriber list is
// copied under the lock and callbacks run outside it, so a callback may
// subscribe or unsubscribe without deadlocking.
func (n *Notifier) dispatch(event *service.ChangeEvent) {
	n.mu.Lock()
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.fn(event.Kind, event.Payload)
	}
}

// onRemote handles envelopes arriving from the transport.
func (n *Notifier) onRemote(data []byte) {
	var event service.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		n.logger.Warn("Discarding malformed sync envelope",
			slog.Any("error", err),
		)

		return
	}

	if event.Origin == n.origin {
		return
	}

	n.dispatch(&event)
}
