package memory

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository is the constructor for the in-memory category repository.
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

// ListCategories returns defensive copies ordered by sort order.
func (repo *categoryRepository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cp := c
		categories = append(categories, &cp)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	return categories, nil
}

func (repo *categoryRepository) CreateCategory(_ context.Context, category *entity.Category) error {
	s := repo.store
	s.mu.Lock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	category.CreatedAt = time.Now().UTC()
	category.UpdatedAt = category.CreatedAt
	s.categories = append(s.categories, *category)

	s.mu.Unlock()
	s.snapshot(keyCategories, s.copyCategories())

	return nil
}

func (repo *categoryRepository) UpdateCategory(_ context.Context, id int64, patch *repository.CategoryPatch) (*entity.Category, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrCategoryNotFound
	}

	c := &s.categories[idx]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	if patch.SortOrder != nil {
		c.SortOrder = *patch.SortOrder
	}
	c.UpdatedAt = time.Now().UTC()
	merged := *c

	s.mu.Unlock()
	s.snapshot(keyCategories, s.copyCategories())

	return &merged, nil
}

func (repo *categoryRepository) DeleteCategory(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	s.mu.Unlock()
	s.snapshot(keyCategories, s.copyCategories())

	return nil
}

func (s *Store) copyCategories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.Category, len(s.categories))
	copy(cp, s.categories)

	return cp
}
