package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
// Site settings live in a single row under the well-known id; page settings
// are keyed by the page name.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetSiteSettings returns the site-wide settings row.
func (repo *settingsRepository) GetSiteSettings(ctx context.Context) (*entity.SiteSettings, error) {
	var settingsM model.SiteSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.SettingsID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get site settings")
	}

	return toSiteSettingsDomain(&settingsM), nil
}

// UpsertSiteSettings creates or replaces the site-wide settings row. The
// creation timestamp survives updates; everything else is replaced.
func (repo *settingsRepository) UpsertSiteSettings(ctx context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error) {
	settingsM := fromSiteSettingsDomain(settings)
	settingsM.ID = entity.SettingsID

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"site_name", "tagline", "primary_color", "accent_color",
				"announcement", "show_reviews", "show_blog", "ordering_open",
				"contact_email", "contact_phone", "updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "site settings"); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.Wrap(err, "failed to upsert site settings")
	}

	return repo.GetSiteSettings(ctx)
}

// GetPageSettings returns the settings row for the named page.
func (repo *settingsRepository) GetPageSettings(ctx context.Context, page string) (*entity.PageSettings, error) {
	var settingsM model.PageSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("page = ?", page).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get page settings")
	}

	return toPageSettingsDomain(&settingsM), nil
}

// UpsertPageSettings creates or replaces the settings row for settings.Page.
func (repo *settingsRepository) UpsertPageSettings(ctx context.Context, settings *entity.PageSettings) (*entity.PageSettings, error) {
	settingsM := fromPageSettingsDomain(settings)
	settingsM.ID = 0 // let the backend keep the existing id on conflict

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "page"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "subtitle", "hero_image_url", "is_visible", "updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "page settings"); constraintErr != nil {
			return nil, constraintErr
		}

		return nil, errors.Wrap(err, "failed to upsert page settings")
	}

	return repo.GetPageSettings(ctx, settings.Page)
}

func toSiteSettingsDomain(data *model.SiteSettingsModel) *entity.SiteSettings {
	return &entity.SiteSettings{
		ID:           data.ID,
		SiteName:     data.SiteName,
		Tagline:      data.Tagline,
		PrimaryColor: data.PrimaryColor,
		AccentColor:  data.AccentColor,
		Announcement: data.Announcement,
		ShowReviews:  data.ShowReviews,
		ShowBlog:     data.ShowBlog,
		OrderingOpen: data.OrderingOpen,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSiteSettingsDomain(data *entity.SiteSettings) *model.SiteSettingsModel {
	return &model.SiteSettingsModel{
		ID:           data.ID,
		SiteName:     data.SiteName,
		Tagline:      data.Tagline,
		PrimaryColor: data.PrimaryColor,
		AccentColor:  data.AccentColor,
		Announcement: data.Announcement,
		ShowReviews:  data.ShowReviews,
		ShowBlog:     data.ShowBlog,
		OrderingOpen: data.OrderingOpen,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toPageSettingsDomain(data *model.PageSettingsModel) *entity.PageSettings {
	return &entity.PageSettings{
		ID:           data.ID,
		Page:         data.Page,
		Title:        data.Title,
		Subtitle:     data.Subtitle,
		HeroImageURL: data.HeroImageURL,
		IsVisible:    data.IsVisible,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPageSettingsDomain(data *entity.PageSettings) *model.PageSettingsModel {
	return &model.PageSettingsModel{
		ID:           data.ID,
		Page:         data.Page,
		Title:        data.Title,
		Subtitle:     data.Subtitle,
		HeroImageURL: data.HeroImageURL,
		IsVisible:    data.IsVisible,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
