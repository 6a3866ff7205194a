// Package sync implements the cross-context change notifier. Events publish
// locally first, then ride a transport to every other context sharing the
// same medium; remotely observed events are re-dispatched through the same
// local fan-out so subscribers cannot tell where a change originated.
package sync

import "context"

// Transport carries marshaled event envelopes between contexts. Broadcast
// failures are reported to the publisher; delivery to other contexts is at
// most once.
type Transport interface {
	// Broadcast sends one marshaled envelope to every listening context,
	// including this one. Echo suppression happens above the transport.
	Broadcast(ctx context.Context, data []byte) error

	// Listen registers fn for envelopes broadcast by any context. fn runs on
	// the transport's delivery goroutine; it must not block.
	Listen(fn func(data []byte)) error

	// Close stops delivery and releases transport resources.
	Close() error
}
