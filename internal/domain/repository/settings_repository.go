package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingsNotFound is returned when no settings row exists yet for the
// requested concern. Callers are expected to fall back to the entity's
// default template rather than surface this to the UI.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines access to the singleton settings rows.
// Upserts create the row under the well-known id on first save and update it
// in place afterwards; a concern never has more than one row.
type SettingsRepository interface {
	// GetSiteSettings returns the site-wide settings row.
	// Returns ErrSettingsNotFound before the first save.
	GetSiteSettings(ctx context.Context) (*entity.SiteSettings, error)

	// UpsertSiteSettings creates or replaces the site-wide settings row,
	// preserving the original creation timestamp on update.
	UpsertSiteSettings(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error)

	// GetPageSettings returns the settings row for the named page.
	// Returns ErrSettingsNotFound before the first save.
	GetPageSettings(ctx context.Context, page string) (*entity.PageSettings, error)

	// UpsertPageSettings creates or replaces the settings row for
	// settings.Page, preserving the original creation timestamp on update.
	UpsertPageSettings(ctx context.Context, settings *entity.PageSettings) (*entity.PageSettings, error)
}
