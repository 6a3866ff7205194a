package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListProducts returns all products, newest first.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindProductByID retrieves a single product by its id.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct persists a new product and copies back generated values.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "product"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct merges patch fields into the stored row. A zero-row update is
// normalized to ErrProductNotFound rather than silently succeeding.
func (repo *productRepository) UpdateProduct(ctx context.Context, id int64, patch *repository.ProductPatch) (*entity.Product, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		fields["category_id"] = *patch.CategoryID
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if constraintErr := classifyConstraint(tx.Error, "product"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update product")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	return repo.FindProductByID(ctx, id)
}

// DeleteProduct removes a product. Deleting an unknown id succeeds.
func (repo *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
