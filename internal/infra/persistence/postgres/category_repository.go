package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// ListCategories returns all categories ordered by sort order.
func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// CreateCategory persists a new category and copies back generated values.
func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "category"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// UpdateCategory merges patch fields into the stored row and returns the
// merged record.
func (repo *categoryRepository) UpdateCategory(ctx context.Context, id int64, patch *repository.CategoryPatch) (*entity.Category, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Color != nil {
		fields["color"] = *patch.Color
	}
	if patch.Icon != nil {
		fields["icon"] = *patch.Icon
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if patch.SortOrder != nil {
		fields["sort_order"] = *patch.SortOrder
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.CategoryModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if constraintErr := classifyConstraint(tx.Error, "category"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update category")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrCategoryNotFound
		}
	}

	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to reload category")
	}

	return toCategoryDomain(&categoryM), nil
}

// DeleteCategory removes a category. Deleting an unknown id succeeds.
func (repo *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Color:       data.Color,
		Icon:        data.Icon,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Color:       data.Color,
		Icon:        data.Icon,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
