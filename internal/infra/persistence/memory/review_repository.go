package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type reviewRepository struct {
	store *Store
}

// NewReviewRepository is the constructor for the in-memory review repository.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (repo *reviewRepository) ListReviews(_ context.Context) ([]*entity.Review, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*entity.Review, 0, len(s.reviews))
	for i := len(s.reviews) - 1; i >= 0; i-- {
		cp := s.reviews[i]
		reviews = append(reviews, &cp)
	}

	return reviews, nil
}

func (repo *reviewRepository) CreateReview(_ context.Context, review *entity.Review) error {
	s := repo.store
	s.mu.Lock()

	review.ID = s.nextReviewID
	s.nextReviewID++
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = review.CreatedAt
	s.reviews = append(s.reviews, *review)

	s.mu.Unlock()
	s.snapshot(keyReviews, s.copyReviews())

	return nil
}

func (repo *reviewRepository) UpdateReview(_ context.Context, id int64, patch *repository.ReviewPatch) (*entity.Review, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrReviewNotFound
	}

	r := &s.reviews[idx]
	if patch.CustomerName != nil {
		r.CustomerName = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		r.CustomerEmail = *patch.CustomerEmail
	}
	if patch.ProductID != nil {
		r.ProductID = *patch.ProductID
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		r.Comment = *patch.Comment
	}
	if patch.IsApproved != nil {
		r.IsApproved = *patch.IsApproved
	}
	if patch.IsFeatured != nil {
		r.IsFeatured = *patch.IsFeatured
	}
	r.UpdatedAt = time.Now().UTC()
	merged := *r

	s.mu.Unlock()
	s.snapshot(keyReviews, s.copyReviews())

	return &merged, nil
}

func (repo *reviewRepository) DeleteReview(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()

	kept := s.reviews[:0]
	for _, r := range s.reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reviews = kept

	s.mu.Unlock()
	s.snapshot(keyReviews, s.copyReviews())

	return nil
}

func (s *Store) copyReviews() []entity.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.Review, len(s.reviews))
	copy(cp, s.reviews)

	return cp
}
