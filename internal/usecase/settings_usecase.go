package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase defines the interface for storefront settings use cases.
// Reads never fail with "not found": before the first save the default
// template is returned so the UI always has something to render.
type SettingsUsecase interface {
	// GetSiteSettings returns the stored site settings or the defaults
	GetSiteSettings(ctx context.Context) (*entity.SiteSettings, error)

	// SaveSiteSettings upserts the singleton site settings row
	SaveSiteSettings(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error)

	// GetPageSettings returns the named page's settings or its defaults
	GetPageSettings(ctx context.Context, page string) (*entity.PageSettings, error)

	// SavePageSettings upserts the settings row for settings.Page
	SavePageSettings(ctx context.Context, settings *entity.PageSettings) (*entity.PageSettings, error)
}
