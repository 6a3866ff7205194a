package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository is the constructor for the in-memory order repository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) ListOrders(_ context.Context) ([]*entity.Order, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*entity.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		cp := s.orders[i]
		orders = append(orders, &cp)
	}

	return orders, nil
}

func (repo *orderRepository) FindOrderByID(_ context.Context, id int64) (*entity.Order, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			cp := o

			return &cp, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (repo *orderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	s := repo.store
	s.mu.Lock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt
	s.orders = append(s.orders, *order)

	s.mu.Unlock()
	s.snapshot(keyOrders, s.copyOrders())

	return nil
}

func (repo *orderRepository) UpdateOrder(_ context.Context, id int64, patch *repository.OrderPatch) (*entity.Order, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrOrderNotFound
	}

	o := &s.orders[idx]
	if patch.CustomerName != nil {
		o.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		o.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerAddress != nil {
		o.CustomerAddress = *patch.CustomerAddress
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.PaymentMethod != nil {
		o.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	o.UpdatedAt = time.Now().UTC()
	merged := *o

	s.mu.Unlock()
	s.snapshot(keyOrders, s.copyOrders())

	return &merged, nil
}

func (repo *orderRepository) DeleteOrder(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()

	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept

	s.mu.Unlock()
	s.snapshot(keyOrders, s.copyOrders())

	return nil
}

func (s *Store) copyOrders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.Order, len(s.orders))
	copy(cp, s.orders)

	return cp
}
