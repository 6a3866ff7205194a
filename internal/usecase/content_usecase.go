package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ContentUsecase defines the interface for blog management use cases
type ContentUsecase interface {
	// ListPosts returns all posts, newest first
	ListPosts(ctx context.Context) ([]*entity.BlogPost, error)

	// GetPost retrieves a single post
	GetPost(ctx context.Context, id int64) (*entity.BlogPost, error)

	// CreatePost creates a post and returns it with its assigned id
	CreatePost(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error)

	// UpdatePost merges the patch into the post and returns the result
	UpdatePost(ctx context.Context, id int64, patch *repository.PostPatch) (*entity.BlogPost, error)

	// DeletePost removes a post; unknown ids succeed
	DeletePost(ctx context.Context, id int64) error

	// RecordPostView bumps the post's view counter
	RecordPostView(ctx context.Context, id int64) (*entity.BlogPost, error)

	// LikePost bumps the post's like counter
	LikePost(ctx context.Context, id int64) (*entity.BlogPost, error)
}
