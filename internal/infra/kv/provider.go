package kv

import (
	"context"
	"log/slog"

	"storefront/config"

	"go.uber.org/fx"
)

// Params holds dependencies for the shared medium, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the durable medium based on configuration. A configured state
// directory yields the file-backed store shared across processes; otherwise
// the medium is in-memory and private to this process.
func New(params Params) (Store, error) {
	cfg := params.Config.LocalStore
	logger := params.Logger

	var store Store
	var err error

	if cfg != nil && cfg.StateDir != "" {
		logger.Info("Using file-backed key-value medium",
			slog.String("state_dir", cfg.StateDir),
		)

		store, err = NewFileStore(cfg.StateDir)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("No state directory configured, using in-memory medium")

		store = NewMemoryStore()
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing key-value medium")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the key-value medium FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
