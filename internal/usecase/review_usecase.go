package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ReviewUsecase defines the interface for review moderation use cases
type ReviewUsecase interface {
	// ListReviews returns all reviews, newest first
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// SubmitReview validates and stores a new review. Reviews start
	// unapproved regardless of the submitted flags.
	SubmitReview(ctx context.Context, review *entity.Review) (*entity.Review, error)

	// UpdateReview merges the patch into the review and returns the result
	UpdateReview(ctx context.Context, id int64, patch *repository.ReviewPatch) (*entity.Review, error)

	// SetReviewApproval toggles whether the review shows on the storefront
	SetReviewApproval(ctx context.Context, id int64, approved bool) (*entity.Review, error)

	// SetReviewFeatured toggles the review's featured placement
	SetReviewFeatured(ctx context.Context, id int64, featured bool) (*entity.Review, error)

	// DeleteReview removes a review; unknown ids succeed
	DeleteReview(ctx context.Context, id int64) error
}
