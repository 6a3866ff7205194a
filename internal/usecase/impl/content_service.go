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

	"go.uber.org/fx"
)

type contentService struct {
	remote   *postgres.Repositories
	local    *memory.Repositories
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Remote   *postgres.Repositories `optional:"true"`
	Local    *memory.Repositories
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewContentService creates a new content service instance
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		remote:   params.Remote,
		local:    params.Local,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// ListPosts returns all posts, newest first
func (s *contentService) ListPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	return remoteFirst(s.logger, "list posts",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.BlogPost, error) {
			return r.Posts.ListPosts(ctx)
		}),
		func() ([]*entity.BlogPost, error) {
			return s.local.Posts.ListPosts(ctx)
		})
}

// GetPost retrieves a single post
func (s *contentService) GetPost(ctx context.Context, id int64) (*entity.BlogPost, error) {
	return remoteFirst(s.logger, "get post",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.BlogPost, error) {
			return r.Posts.FindPostByID(ctx, id)
		}),
		func() (*entity.BlogPost, error) {
			return s.local.Posts.FindPostByID(ctx, id)
		})
}

// CreatePost creates a post and returns it with its assigned id
func (s *contentService) CreatePost(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error) {
	created, err := remoteFirst(s.logger, "create post",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.BlogPost, error) {
			return post, r.Posts.CreatePost(ctx, post)
		}),
		func() (*entity.BlogPost, error) {
			return post, s.local.Posts.CreatePost(ctx, post)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "post.created", created)

	return created, nil
}

// UpdatePost merges the patch into the post and returns the result
func (s *contentService) UpdatePost(ctx context.Context, id int64, patch *repository.PostPatch) (*entity.BlogPost, error) {
	updated, err := remoteFirst(s.logger, "update post",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.BlogPost, error) {
			return r.Posts.UpdatePost(ctx, id, patch)
		}),
		func() (*entity.BlogPost, error) {
			return s.local.Posts.UpdatePost(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "post.updated", updated)

	return updated, nil
}

// DeletePost removes a post; unknown ids succeed
func (s *contentService) DeletePost(ctx context.Context, id int64) error {
	_, err := remoteFirst(s.logger, "delete post",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Posts.DeletePost(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Posts.DeletePost(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "post.deleted", deletedPayload[int64]{ID: id})

	return nil
}

// RecordPostView bumps the post's view counter
func (s *contentService) RecordPostView(ctx context.Context, id int64) (*entity.BlogPost, error) {
	return s.bumpCounter(ctx, id, func(post *entity.BlogPost) *repository.PostPatch {
		views := post.Views + 1

		return &repository.PostPatch{Views: &views}
	})
}

// LikePost bumps the post's like counter
func (s *contentService) LikePost(ctx context.Context, id int64) (*entity.BlogPost, error) {
	return s.bumpCounter(ctx, id, func(post *entity.BlogPost) *repository.PostPatch {
		likes := post.Likes + 1

		return &repository.PostPatch{Likes: &likes}
	})
}

// bumpCounter reads the current counters and writes the incremented value.
// Concurrent bumps may collapse into one; the counters are engagement hints,
// not bookkeeping.
func (s *contentService) bumpCounter(ctx context.Context, id int64, patchFn func(*entity.BlogPost) *repository.PostPatch) (*entity.BlogPost, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.UpdatePost(ctx, id, patchFn(post))
}
