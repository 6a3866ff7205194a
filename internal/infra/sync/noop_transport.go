package sync

import (
	"context"
	"log/slog"
)

// noopTransport is used when no sync provider is configured. Events still
// reach subscribers in this context; nothing leaves the process.
type noopTransport struct {
	logger *slog.Logger
}

func (t *noopTransport) Broadcast(_ context.Context, _ []byte) error {
	t.logger.Debug("[NoopSync] Cross-context broadcast disabled, skipping")

	return nil
}

func (t *noopTransport) Listen(_ func(data []byte)) error {
	return nil
}

func (t *noopTransport) Close() error {
	return nil
}
