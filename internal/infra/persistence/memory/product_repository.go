package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository is the constructor for the in-memory product repository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

// ListProducts returns defensive copies, newest first. Callers may mutate the
// result freely without corrupting the store.
func (repo *productRepository) ListProducts(_ context.Context) ([]*entity.Product, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*entity.Product, 0, len(s.products))
	for i := len(s.products) - 1; i >= 0; i-- {
		cp := s.products[i]
		products = append(products, &cp)
	}

	return products, nil
}

func (repo *productRepository) FindProductByID(_ context.Context, id int64) (*entity.Product, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			cp := p

			return &cp, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (repo *productRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	s := repo.store
	s.mu.Lock()

	product.ID = s.nextProductID
	s.nextProductID++
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	s.products = append(s.products, *product)

	s.mu.Unlock()
	s.snapshot(keyProducts, s.copyProducts())

	return nil
}

func (repo *productRepository) UpdateProduct(_ context.Context, id int64, patch *repository.ProductPatch) (*entity.Product, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrProductNotFound
	}

	p := &s.products[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedAt = time.Now().UTC()
	merged := *p

	s.mu.Unlock()
	s.snapshot(keyProducts, s.copyProducts())

	return &merged, nil
}

func (repo *productRepository) DeleteProduct(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept

	s.mu.Unlock()
	s.snapshot(keyProducts, s.copyProducts())

	return nil
}

func (s *Store) copyProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.Product, len(s.products))
	copy(cp, s.products)

	return cp
}
