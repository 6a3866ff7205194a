package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewPatch carries a partial review update. Nil fields are left
// untouched by Update.
type ReviewPatch struct {
	CustomerName  *string
	CustomerEmail *string
	ProductID     *int64
	Rating        *int
	Comment       *string
	IsApproved    *bool
	IsFeatured    *bool
}

// ReviewRepository defines review CRUD against one backing store.
type ReviewRepository interface {
	// ListReviews returns all reviews, newest first.
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// CreateReview persists the review and fills in its assigned
	// id and timestamps.
	CreateReview(ctx context.Context, review *entity.Review) error

	// UpdateReview merges the patch into the stored review and returns
	// the merged record. Returns ErrReviewNotFound for an unknown id.
	UpdateReview(ctx context.Context, id int64, patch *ReviewPatch) (*entity.Review, error)

	// DeleteReview removes the review. Deleting an unknown id succeeds.
	DeleteReview(ctx context.Context, id int64) error
}
