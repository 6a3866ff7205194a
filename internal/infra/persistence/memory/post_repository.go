package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type postRepository struct {
	store *Store
}

// NewPostRepository is the constructor for the in-memory blog post repository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

func (repo *postRepository) ListPosts(_ context.Context) ([]*entity.BlogPost, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*entity.BlogPost, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		cp := s.posts[i]
		posts = append(posts, &cp)
	}

	return posts, nil
}

func (repo *postRepository) FindPostByID(_ context.Context, id int64) (*entity.BlogPost, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			cp := p

			return &cp, nil
		}
	}

	return nil, repository.ErrPostNotFound
}

func (repo *postRepository) CreatePost(_ context.Context, post *entity.BlogPost) error {
	s := repo.store
	s.mu.Lock()

	post.ID = s.nextPostID
	s.nextPostID++
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	s.posts = append(s.posts, *post)

	s.mu.Unlock()
	s.snapshot(keyPosts, s.copyPosts())

	return nil
}

func (repo *postRepository) UpdatePost(_ context.Context, id int64, patch *repository.PostPatch) (*entity.BlogPost, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.posts {
		if s.posts[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrPostNotFound
	}

	p := &s.posts[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.IsPublished != nil {
		p.IsPublished = *patch.IsPublished
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.Views != nil {
		p.Views = *patch.Views
	}
	if patch.Likes != nil {
		p.Likes = *patch.Likes
	}
	p.UpdatedAt = time.Now().UTC()
	merged := *p

	s.mu.Unlock()
	s.snapshot(keyPosts, s.copyPosts())

	return &merged, nil
}

func (repo *postRepository) DeletePost(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept

	s.mu.Unlock()
	s.snapshot(keyPosts, s.copyPosts())

	return nil
}

func (s *Store) copyPosts() []entity.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.BlogPost, len(s.posts))
	copy(cp, s.posts)

	return cp
}
