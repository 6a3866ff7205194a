package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewForTest(t *testing.T, notifier *recordingNotifier) usecase.ReviewUsecase {
	t.Helper()

	return NewReviewService(ReviewServiceParams{
		Local:    testLocal(t),
		Notifier: notifier,
		Logger:   testLogger(),
	})
}

func TestReviewService_SubmitResetsModerationFlags(t *testing.T) {
	notifier := &recordingNotifier{}
	reviews := newReviewForTest(t, notifier)

	created, err := reviews.SubmitReview(context.Background(), &entity.Review{
		CustomerName: "Nina",
		ProductID:    1,
		Rating:       5,
		Comment:      "Lovely",
		IsApproved:   true,
		IsFeatured:   true,
	})
	require.NoError(t, err)

	assert.False(t, created.IsApproved, "a submission cannot approve itself")
	assert.False(t, created.IsFeatured)
	assert.Equal(t, []string{"review.created"}, notifier.kinds())
}

func TestReviewService_SubmitRejectsOutOfRangeRating(t *testing.T) {
	reviews := newReviewForTest(t, &recordingNotifier{})
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := reviews.SubmitReview(ctx, &entity.Review{CustomerName: "Nina", ProductID: 1, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_UpdateRejectsOutOfRangeRating(t *testing.T) {
	reviews := newReviewForTest(t, &recordingNotifier{})

	rating := 9
	_, err := reviews.UpdateReview(context.Background(), 1, &repository.ReviewPatch{Rating: &rating})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestReviewService_Moderation(t *testing.T) {
	notifier := &recordingNotifier{}
	reviews := newReviewForTest(t, notifier)
	ctx := context.Background()

	approved, err := reviews.SetReviewApproval(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, approved.IsApproved)

	featured, err := reviews.SetReviewFeatured(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, featured.IsFeatured)

	assert.Equal(t, []string{"review.updated", "review.updated"}, notifier.kinds())
}

func TestReviewService_ModerateUnknownReview(t *testing.T) {
	reviews := newReviewForTest(t, &recordingNotifier{})

	_, err := reviews.SetReviewApproval(context.Background(), 9999, true)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
