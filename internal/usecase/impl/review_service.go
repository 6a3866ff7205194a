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

// ErrInvalidRating is returned when a review rating falls outside 1 to 5
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type reviewService struct {
	remote   *postgres.Repositories
	local    *memory.Repositories
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Remote   *postgres.Repositories `optional:"true"`
	Local    *memory.Repositories
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		remote:   params.Remote,
		local:    params.Local,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// ListReviews returns all reviews, newest first
func (s *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return remoteFirst(s.logger, "list reviews",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.Review, error) {
			return r.Reviews.ListReviews(ctx)
		}),
		func() ([]*entity.Review, error) {
			return s.local.Reviews.ListReviews(ctx)
		})
}

// SubmitReview validates and stores a new review. Moderation flags reset so
// a submission can never approve or feature itself.
func (s *reviewService) SubmitReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.Wrapf(ErrInvalidRating, "got %d", review.Rating)
	}

	review.IsApproved = false
	review.IsFeatured = false

	created, err := remoteFirst(s.logger, "submit review",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Review, error) {
			return review, r.Reviews.CreateReview(ctx, review)
		}),
		func() (*entity.Review, error) {
			return review, s.local.Reviews.CreateReview(ctx, review)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "review.created", created)

	return created, nil
}

// UpdateReview merges the patch into the review and returns the result
func (s *reviewService) UpdateReview(ctx context.Context, id int64, patch *repository.ReviewPatch) (*entity.Review, error) {
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return nil, errors.Wrapf(ErrInvalidRating, "got %d", *patch.Rating)
	}

	updated, err := remoteFirst(s.logger, "update review",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Review, error) {
			return r.Reviews.UpdateReview(ctx, id, patch)
		}),
		func() (*entity.Review, error) {
			return s.local.Reviews.UpdateReview(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "review.updated", updated)

	return updated, nil
}

// SetReviewApproval toggles whether the review shows on the storefront
func (s *reviewService) SetReviewApproval(ctx context.Context, id int64, approved bool) (*entity.Review, error) {
	return s.UpdateReview(ctx, id, &repository.ReviewPatch{IsApproved: &approved})
}

// SetReviewFeatured toggles the review's featured placement
func (s *reviewService) SetReviewFeatured(ctx context.Context, id int64, featured bool) (*entity.Review, error) {
	return s.UpdateReview(ctx, id, &repository.ReviewPatch{IsFeatured: &featured})
}

// DeleteReview removes a review; unknown ids succeed
func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	_, err := remoteFirst(s.logger, "delete review",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Reviews.DeleteReview(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Reviews.DeleteReview(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "review.deleted", deletedPayload[int64]{ID: id})

	return nil
}
