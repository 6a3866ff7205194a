package memory

import "storefront/internal/domain/repository"

// Repositories bundles the local-store repositories behind one handle,
// mirroring the remote bundle's shape.
type Repositories struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Reviews    repository.ReviewRepository
	Posts      repository.PostRepository
	Users      repository.UserRepository
	Settings   repository.SettingsRepository
}

// NewRepositories builds the local repository bundle over one store.
func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Categories: NewCategoryRepository(store),
		Products:   NewProductRepository(store),
		Orders:     NewOrderRepository(store),
		Reviews:    NewReviewRepository(store),
		Posts:      NewPostRepository(store),
		Users:      NewUserRepository(store),
		Settings:   NewSettingsRepository(store),
	}
}
