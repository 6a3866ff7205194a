// Package repository defines the interfaces for the persistence layer.
// Every interface is implemented twice: by the remote backend (postgres)
// and by the in-process local store (memory). The façade in usecase/impl
// picks between them at call time.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryPatch carries a partial category update. Nil fields are left
// untouched by Update.
type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	IsActive    *bool
	SortOrder   *int
}

// CategoryRepository defines category CRUD against one backing store.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by sort order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory persists the category and fills in its assigned
	// id and timestamps.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory merges the patch into the stored category and returns
	// the merged record. Returns ErrCategoryNotFound for an unknown id.
	UpdateCategory(ctx context.Context, id int64, patch *CategoryPatch) (*entity.Category, error)

	// DeleteCategory removes the category. Deleting an unknown id succeeds.
	DeleteCategory(ctx context.Context, id int64) error
}
