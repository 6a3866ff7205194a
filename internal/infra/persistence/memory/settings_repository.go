package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type settingsRepository struct {
	store *Store
}

// NewSettingsRepository is the constructor for the in-memory settings repository.
func NewSettingsRepository(store *Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (repo *settingsRepository) GetSiteSettings(_ context.Context) (*entity.SiteSettings, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.site == nil {
		return nil, repository.ErrSettingsNotFound
	}
	cp := *s.site

	return &cp, nil
}

// UpsertSiteSettings keeps exactly one site row under the well-known id.
func (repo *settingsRepository) UpsertSiteSettings(_ context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error) {
	s := repo.store
	s.mu.Lock()

	now := time.Now().UTC()
	settings.ID = entity.SettingsID
	if s.site == nil {
		settings.CreatedAt = now
	} else {
		settings.CreatedAt = s.site.CreatedAt
	}
	settings.UpdatedAt = now
	stored := *settings
	s.site = &stored
	result := stored

	s.mu.Unlock()
	s.snapshot(keySettings, s.copySettings())

	return &result, nil
}

func (repo *settingsRepository) GetPageSettings(_ context.Context, page string) (*entity.PageSettings, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.pages {
		if p.Page == page {
			cp := p

			return &cp, nil
		}
	}

	return nil, repository.ErrSettingsNotFound
}

// UpsertPageSettings keeps exactly one row per page name.
func (repo *settingsRepository) UpsertPageSettings(_ context.Context, settings *entity.PageSettings) (*entity.PageSettings, error) {
	s := repo.store
	s.mu.Lock()

	now := time.Now().UTC()
	idx := -1
	for i := range s.pages {
		if s.pages[i].Page == settings.Page {
			idx = i

			break
		}
	}
	if idx >= 0 {
		settings.ID = s.pages[idx].ID
		settings.CreatedAt = s.pages[idx].CreatedAt
		settings.UpdatedAt = now
		s.pages[idx] = *settings
	} else {
		settings.ID = s.nextPageID
		s.nextPageID++
		settings.CreatedAt = now
		settings.UpdatedAt = now
		s.pages = append(s.pages, *settings)
	}
	result := *settings

	s.mu.Unlock()
	s.snapshot(keySettings, s.copySettings())

	return &result, nil
}

func (s *Store) copySettings() settingsState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := settingsState{}
	if s.site != nil {
		cp := *s.site
		state.Site = &cp
	}
	state.Pages = make([]entity.PageSettings, len(s.pages))
	copy(state.Pages, s.pages)

	return state
}
