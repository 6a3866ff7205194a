package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	remote   *postgres.Repositories
	local    *memory.Repositories
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	Remote   *postgres.Repositories `optional:"true"`
	Local    *memory.Repositories
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		remote:   params.Remote,
		local:    params.Local,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// GetSiteSettings returns the stored site settings or the defaults
func (s *settingsService) GetSiteSettings(ctx context.Context) (*entity.SiteSettings, error) {
	settings, err := remoteFirst(s.logger, "get site settings",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.SiteSettings, error) {
			return r.Settings.GetSiteSettings(ctx)
		}),
		func() (*entity.SiteSettings, error) {
			return s.local.Settings.GetSiteSettings(ctx)
		})
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.DefaultSiteSettings(), nil
	}

	return settings, err
}

// SaveSiteSettings upserts the singleton site settings row
func (s *settingsService) SaveSiteSettings(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error) {
	saved, err := remoteFirst(s.logger, "save site settings",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.SiteSettings, error) {
			return r.Settings.UpsertSiteSettings(ctx, settings)
		}),
		func() (*entity.SiteSettings, error) {
			return s.local.Settings.UpsertSiteSettings(ctx, settings)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "settings.updated", saved)

	return saved, nil
}

// GetPageSettings returns the named page's settings or its defaults
func (s *settingsService) GetPageSettings(ctx context.Context, page string) (*entity.PageSettings, error) {
	settings, err := remoteFirst(s.logger, "get page settings",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.PageSettings, error) {
			return r.Settings.GetPageSettings(ctx, page)
		}),
		func() (*entity.PageSettings, error) {
			return s.local.Settings.GetPageSettings(ctx, page)
		})
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.DefaultPageSettings(page), nil
	}

	return settings, err
}

// SavePageSettings upserts the settings row for settings.Page
func (s *settingsService) SavePageSettings(ctx context.Context, settings *entity.PageSettings) (*entity.PageSettings, error) {
	saved, err := remoteFirst(s.logger, "save page settings",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.PageSettings, error) {
			return r.Settings.UpsertPageSettings(ctx, settings)
		}),
		func() (*entity.PageSettings, error) {
			return s.local.Settings.UpsertPageSettings(ctx, settings)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "page_settings.updated", saved)

	return saved, nil
}
