package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// ListOrders returns all orders, newest first
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder retrieves a single order
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// CreateOrder creates an order and returns it with its assigned id.
	// A missing status defaults to pending.
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// UpdateOrder merges the patch into the order and returns the result.
	// Status changes must follow the fulfilment flow.
	UpdateOrder(ctx context.Context, id int64, patch *repository.OrderPatch) (*entity.Order, error)

	// DeleteOrder removes an order; unknown ids succeed
	DeleteOrder(ctx context.Context, id int64) error
}
