// Package usecase defines the application-facing interfaces of the admin
// console. Every data operation goes through a façade that prefers the
// remote backend and transparently falls back to the local store when the
// backend is unreachable; callers never learn which one served them.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CatalogUsecase defines the interface for category and product management use cases
type CatalogUsecase interface {
	// ListCategories returns all categories ordered by sort order
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory creates a category and returns it with its assigned id
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// UpdateCategory merges the patch into the category and returns the result
	UpdateCategory(ctx context.Context, id int64, patch *repository.CategoryPatch) (*entity.Category, error)

	// DeleteCategory removes a category; unknown ids succeed
	DeleteCategory(ctx context.Context, id int64) error

	// ListProducts returns all products, newest first
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves a single product
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct creates a product and returns it with its assigned id
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// UpdateProduct merges the patch into the product and returns the result
	UpdateProduct(ctx context.Context, id int64, patch *repository.ProductPatch) (*entity.Product, error)

	// DeleteProduct removes a product; unknown ids succeed
	DeleteProduct(ctx context.Context, id int64) error

	// GenerateProductShareQR renders a QR code PNG linking to the product's
	// public page
	GenerateProductShareQR(ctx context.Context, id int64) ([]byte, error)
}
