package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListOrders returns all orders, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindOrderByID retrieves a single order by its id.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// CreateOrder persists a new order and copies back generated values.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "order"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateOrder merges patch fields into the stored row and returns the
// merged record.
func (repo *orderRepository) UpdateOrder(ctx context.Context, id int64, patch *repository.OrderPatch) (*entity.Order, error) {
	fields := map[string]any{}
	if patch.CustomerName != nil {
		fields["customer_name"] = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		fields["customer_phone"] = *patch.CustomerPhone
	}
	if patch.CustomerAddress != nil {
		fields["customer_address"] = *patch.CustomerAddress
	}
	if patch.Total != nil {
		fields["total"] = *patch.Total
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.PaymentMethod != nil {
		fields["payment_method"] = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if constraintErr := classifyConstraint(tx.Error, "order"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update order")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrOrderNotFound
		}
	}

	return repo.FindOrderByID(ctx, id)
}

// DeleteOrder removes an order. Deleting an unknown id succeeds.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		Total:           data.Total,
		Status:          entity.OrderStatus(data.Status),
		PaymentMethod:   data.PaymentMethod,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		Total:           data.Total,
		Status:          string(data.Status),
		PaymentMethod:   data.PaymentMethod,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
