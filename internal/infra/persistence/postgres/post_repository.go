package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// ListPosts returns all blog posts, newest first.
func (repo *postRepository) ListPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	var postModels []*model.BlogPostModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	posts := make([]*entity.BlogPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindPostByID retrieves a single blog post by its id.
func (repo *postRepository) FindPostByID(ctx context.Context, id int64) (*entity.BlogPost, error) {
	var postM model.BlogPostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post by ID")
	}

	return toPostDomain(&postM), nil
}

// CreatePost persists a new blog post and copies back generated values.
func (repo *postRepository) CreatePost(ctx context.Context, post *entity.BlogPost) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if constraintErr := classifyConstraint(err, "blog post"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create blog post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// UpdatePost merges patch fields into the stored row and returns the
// merged record.
func (repo *postRepository) UpdatePost(ctx context.Context, id int64, patch *repository.PostPatch) (*entity.BlogPost, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Content != nil {
		fields["content"] = *patch.Content
	}
	if patch.Excerpt != nil {
		fields["excerpt"] = *patch.Excerpt
	}
	if patch.Author != nil {
		fields["author"] = *patch.Author
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.IsPublished != nil {
		fields["is_published"] = *patch.IsPublished
	}
	if patch.IsFeatured != nil {
		fields["is_featured"] = *patch.IsFeatured
	}
	if patch.Views != nil {
		fields["views"] = *patch.Views
	}
	if patch.Likes != nil {
		fields["likes"] = *patch.Likes
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.BlogPostModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if constraintErr := classifyConstraint(tx.Error, "blog post"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update blog post")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrPostNotFound
		}
	}

	return repo.FindPostByID(ctx, id)
}

// DeletePost removes a blog post. Deleting an unknown id succeeds.
func (repo *postRepository) DeletePost(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogPostModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete blog post")
	}

	return nil
}

func toPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	return &entity.BlogPost{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		Excerpt:     data.Excerpt,
		Author:      data.Author,
		Category:    data.Category,
		IsPublished: data.IsPublished,
		IsFeatured:  data.IsFeatured,
		Views:       data.Views,
		Likes:       data.Likes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.BlogPost) *model.BlogPostModel {
	return &model.BlogPostModel{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		Excerpt:     data.Excerpt,
		Author:      data.Author,
		Category:    data.Category,
		IsPublished: data.IsPublished,
		IsFeatured:  data.IsFeatured,
		Views:       data.Views,
		Likes:       data.Likes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
