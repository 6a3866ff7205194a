package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrPostNotFound is returned when a blog post is not found.
var ErrPostNotFound = errors.New("blog post not found")

// PostPatch carries a partial blog post update. Nil fields are left
// untouched by Update.
type PostPatch struct {
	Title       *string
	Content     *string
	Excerpt     *string
	Author      *string
	Category    *string
	IsPublished *bool
	IsFeatured  *bool
	Views       *int64
	Likes       *int64
}

// PostRepository defines blog post CRUD against one backing store.
type PostRepository interface {
	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]*entity.BlogPost, error)

	// FindPostByID retrieves a single post.
	// Returns ErrPostNotFound for an unknown id.
	FindPostByID(ctx context.Context, id int64) (*entity.BlogPost, error)

	// CreatePost persists the post and fills in its assigned
	// id and timestamps.
	CreatePost(ctx context.Context, post *entity.BlogPost) error

	// UpdatePost merges the patch into the stored post and returns
	// the merged record. Returns ErrPostNotFound for an unknown id.
	UpdatePost(ctx context.Context, id int64, patch *PostPatch) (*entity.BlogPost, error)

	// DeletePost removes the post. Deleting an unknown id succeeds.
	DeletePost(ctx context.Context, id int64) error
}
