// Package service defines interfaces for infrastructure collaborators the
// façade depends on without owning.
package service

import (
	"context"
	"encoding/json"
	"time"
)

// ChangeEvent is the envelope relayed to subscribers. The notifier treats
// Kind and Payload as opaque; entity semantics live entirely with the
// publisher and the subscribers. Locally published and remotely observed
// events carry the identical shape, so subscribers cannot tell the origin.
type ChangeEvent struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
	Origin    string          `json:"origin"` // Publishing context, used to suppress echo.
}

// Subscription identifies one registered callback. Returned by Subscribe and
// passed back to Unsubscribe.
type Subscription struct {
	ID uint64
}

// ChangeNotifier fans mutation events out to subscribers in this context and,
// through a transport, to other contexts sharing the same medium.
type ChangeNotifier interface {
	// Publish marshals payload into an envelope, invokes local subscribers in
	// registration order, then broadcasts to other contexts. The returned
	// error covers the broadcast only; local delivery always happens.
	Publish(ctx context.Context, kind string, payload any) error

	// Subscribe registers fn for every subsequent event, local or remote.
	Subscribe(fn func(kind string, payload json.RawMessage)) *Subscription

	// Unsubscribe removes a previous registration. Unsubscribing an already
	// removed or nil subscription is a no-op.
	Unsubscribe(sub *Subscription)
}
