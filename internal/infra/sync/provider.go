package sync

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/kv"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Sync provider names accepted in configuration.
const (
	ProviderFile   = "file"
	ProviderGoogle = "google"
)

// Params holds dependencies for the change notifier, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Medium kv.Store
}

// NewChangeNotifier creates a ChangeNotifier whose transport is selected by
// configuration. With no provider configured events still fan out to
// subscribers in this context; they just never leave the process.
func NewChangeNotifier(params Params) (service.ChangeNotifier, error) {
	cfg := params.Config.Sync
	logger := params.Logger

	var transport Transport
	var err error

	switch {
	case cfg == nil || cfg.Provider == "":
		logger.Info("Sync not configured, change events stay in-process")

		transport = &noopTransport{logger: logger}

	case cfg.Provider == ProviderFile:
		if cfg.StateDir != "" {
			logger.Info("Using file-backed sync transport",
				slog.String("state_dir", cfg.StateDir),
			)

			store, storeErr := kv.NewFileStore(cfg.StateDir)
			if storeErr != nil {
				return nil, storeErr
			}
			transport = NewKVTransport(store, true)
		} else {
			logger.Info("Using shared medium for sync transport")

			transport = NewKVTransport(params.Medium, false)
		}

	case cfg.Provider == ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		if cfg.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for google provider")
		}

		transport, err = NewGoogleTransport(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.SubscriptionID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown sync provider: %s", cfg.Provider)
	}

	notifier, err := NewNotifier(transport, logger)
	if err != nil {
		transport.Close()

		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing sync transport")

			return transport.Close()
		},
	})

	return notifier, nil
}

// Module provides the sync FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeNotifier),
)
