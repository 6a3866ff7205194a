package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderPatch carries a partial order update. Nil fields are left
// untouched by Update.
type OrderPatch struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	Total           *float64
	Status          *entity.OrderStatus
	PaymentMethod   *string
	Notes           *string
}

// OrderRepository defines order CRUD against one backing store.
type OrderRepository interface {
	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// FindOrderByID retrieves a single order.
	// Returns ErrOrderNotFound for an unknown id.
	FindOrderByID(ctx context.Context, id int64) (*entity.Order, error)

	// CreateOrder persists the order and fills in its assigned
	// id and timestamps.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// UpdateOrder merges the patch into the stored order and returns
	// the merged record. Returns ErrOrderNotFound for an unknown id.
	UpdateOrder(ctx context.Context, id int64, patch *OrderPatch) (*entity.Order, error)

	// DeleteOrder removes the order. Deleting an unknown id succeeds.
	DeleteOrder(ctx context.Context, id int64) error
}
