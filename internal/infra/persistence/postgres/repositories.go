package postgres

import (
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

// Repositories bundles every remote-backed repository behind one handle, so
// the façade can hold a single nilable reference to the whole backend.
type Repositories struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Reviews    repository.ReviewRepository
	Posts      repository.PostRepository
	Users      repository.UserRepository
	Settings   repository.SettingsRepository
}

// NewRepositories builds the remote repository bundle. A nil db means no
// remote backend is configured and the bundle itself is nil; callers treat
// that as "serve everything locally".
func NewRepositories(db *gorm.DB) *Repositories {
	if db == nil {
		return nil
	}

	return &Repositories{
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Orders:     NewOrderRepository(db),
		Reviews:    NewReviewRepository(db),
		Posts:      NewPostRepository(db),
		Users:      NewUserRepository(db),
		Settings:   NewSettingsRepository(db),
	}
}
