package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrInvalidOrderStatus is returned when the submitted status is not one
	// of the enumerated values
	ErrInvalidOrderStatus = errors.New("invalid order status")
	// ErrInvalidStatusTransition is returned when a status change does not
	// follow the fulfilment flow
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

type orderService struct {
	remote   *postgres.Repositories
	local    *memory.Repositories
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Remote   *postgres.Repositories `optional:"true"`
	Local    *memory.Repositories
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		remote:   params.Remote,
		local:    params.Local,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// ListOrders returns all orders, newest first
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return remoteFirst(s.logger, "list orders",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.Order, error) {
			return r.Orders.ListOrders(ctx)
		}),
		func() ([]*entity.Order, error) {
			return s.local.Orders.ListOrders(ctx)
		})
}

// GetOrder retrieves a single order
func (s *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	return remoteFirst(s.logger, "get order",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Order, error) {
			return r.Orders.FindOrderByID(ctx, id)
		}),
		func() (*entity.Order, error) {
			return s.local.Orders.FindOrderByID(ctx, id)
		})
}

// CreateOrder creates an order and returns it with its assigned id
func (s *orderService) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if !order.Status.Valid() {
		return nil, errors.Wrapf(ErrInvalidOrderStatus, "status %q", order.Status)
	}

	created, err := remoteFirst(s.logger, "create order",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Order, error) {
			return order, r.Orders.CreateOrder(ctx, order)
		}),
		func() (*entity.Order, error) {
			return order, s.local.Orders.CreateOrder(ctx, order)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "order.created", created)

	return created, nil
}

// UpdateOrder merges the patch into the order and returns the result. A
// status change is validated against the current status before anything is
// written.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, patch *repository.OrderPatch) (*entity.Order, error) {
	if patch.Status != nil {
		current, err := s.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(*patch.Status) {
			return nil, errors.Wrapf(ErrInvalidStatusTransition, "%s to %s", current.Status, *patch.Status)
		}
	}

	updated, err := remoteFirst(s.logger, "update order",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Order, error) {
			return r.Orders.UpdateOrder(ctx, id, patch)
		}),
		func() (*entity.Order, error) {
			return s.local.Orders.UpdateOrder(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "order.updated", updated)

	return updated, nil
}

// DeleteOrder removes an order; unknown ids succeed
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	_, err := remoteFirst(s.logger, "delete order",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Orders.DeleteOrder(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Orders.DeleteOrder(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "order.deleted", deletedPayload[int64]{ID: id})

	return nil
}
