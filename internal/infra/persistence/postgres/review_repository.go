package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// ListReviews returns all reviews, newest first.
func (repo *reviewRepository) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// CreateReview persists a new review and copies back generated values.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "review"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// UpdateReview merges patch fields into the stored row and returns the
// merged record.
func (repo *reviewRepository) UpdateReview(ctx context.Context, id int64, patch *repository.ReviewPatch) (*entity.Review, error) {
	fields := map[string]any{}
	if patch.CustomerName != nil {
		fields["customer_name"] = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		fields["customer_email"] = *patch.CustomerEmail
	}
	if patch.ProductID != nil {
		fields["product_id"] = *patch.ProductID
	}
	if patch.Rating != nil {
		fields["rating"] = *patch.Rating
	}
	if patch.Comment != nil {
		fields["comment"] = *patch.Comment
	}
	if patch.IsApproved != nil {
		fields["is_approved"] = *patch.IsApproved
	}
	if patch.IsFeatured != nil {
		fields["is_featured"] = *patch.IsFeatured
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.ReviewModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if constraintErr := classifyConstraint(tx.Error, "review"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update review")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrReviewNotFound
		}
	}

	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to reload review")
	}

	return toReviewDomain(&reviewM), nil
}

// DeleteReview removes a review. Deleting an unknown id succeeds.
func (repo *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		ProductID:     data.ProductID,
		Rating:        data.Rating,
		Comment:       data.Comment,
		IsApproved:    data.IsApproved,
		IsFeatured:    data.IsFeatured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		ProductID:     data.ProductID,
		Rating:        data.Rating,
		Comment:       data.Comment,
		IsApproved:    data.IsApproved,
		IsFeatured:    data.IsFeatured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
