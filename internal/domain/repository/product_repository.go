package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductPatch carries a partial product update. Nil fields are left
// untouched by Update.
type ProductPatch struct {
	Name        *string
	Price       *float64
	CategoryID  *int64
	Description *string
	ImageURL    *string
	IsActive    *bool
}

// ProductRepository defines product CRUD against one backing store.
type ProductRepository interface {
	// ListProducts returns all products, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductByID retrieves a single product.
	// Returns ErrProductNotFound for an unknown id.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct persists the product and fills in its assigned
	// id and timestamps.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct merges the patch into the stored product and returns
	// the merged record. Returns ErrProductNotFound for an unknown id.
	UpdateProduct(ctx context.Context, id int64, patch *ProductPatch) (*entity.Product, error)

	// DeleteProduct removes the product. Deleting an unknown id succeeds.
	DeleteProduct(ctx context.Context, id int64) error
}
