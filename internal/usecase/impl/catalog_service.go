package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	remote        *postgres.Repositories
	local         *memory.Repositories
	notifier      service.ChangeNotifier
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Remote        *postgres.Repositories `optional:"true"`
	Local         *memory.Repositories
	Notifier      service.ChangeNotifier
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		remote:        params.Remote,
		local:         params.Local,
		notifier:      params.Notifier,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// ListCategories returns all categories ordered by sort order
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return remoteFirst(s.logger, "list categories",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.Category, error) {
			return r.Categories.ListCategories(ctx)
		}),
		func() ([]*entity.Category, error) {
			return s.local.Categories.ListCategories(ctx)
		})
}

// CreateCategory creates a category and returns it with its assigned id
func (s *catalogService) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	created, err := remoteFirst(s.logger, "create category",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Category, error) {
			return category, r.Categories.CreateCategory(ctx, category)
		}),
		func() (*entity.Category, error) {
			return category, s.local.Categories.CreateCategory(ctx, category)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "category.created", created)

	return created, nil
}

// UpdateCategory merges the patch into the category and returns the result
func (s *catalogService) UpdateCategory(ctx context.Context, id int64, patch *repository.CategoryPatch) (*entity.Category, error) {
	updated, err := remoteFirst(s.logger, "update category",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Category, error) {
			return r.Categories.UpdateCategory(ctx, id, patch)
		}),
		func() (*entity.Category, error) {
			return s.local.Categories.UpdateCategory(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "category.updated", updated)

	return updated, nil
}

// DeleteCategory removes a category; unknown ids succeed
func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	_, err := remoteFirst(s.logger, "delete category",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Categories.DeleteCategory(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Categories.DeleteCategory(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "category.deleted", deletedPayload[int64]{ID: id})

	return nil
}

// ListProducts returns all products, newest first
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return remoteFirst(s.logger, "list products",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.Product, error) {
			return r.Products.ListProducts(ctx)
		}),
		func() ([]*entity.Product, error) {
			return s.local.Products.ListProducts(ctx)
		})
}

// GetProduct retrieves a single product
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return remoteFirst(s.logger, "get product",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Product, error) {
			return r.Products.FindProductByID(ctx, id)
		}),
		func() (*entity.Product, error) {
			return s.local.Products.FindProductByID(ctx, id)
		})
}

// CreateProduct creates a product and returns it with its assigned id
func (s *catalogService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created, err := remoteFirst(s.logger, "create product",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Product, error) {
			return product, r.Products.CreateProduct(ctx, product)
		}),
		func() (*entity.Product, error) {
			return product, s.local.Products.CreateProduct(ctx, product)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "product.created", created)

	return created, nil
}

// UpdateProduct merges the patch into the product and returns the result
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, patch *repository.ProductPatch) (*entity.Product, error) {
	updated, err := remoteFirst(s.logger, "update product",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.Product, error) {
			return r.Products.UpdateProduct(ctx, id, patch)
		}),
		func() (*entity.Product, error) {
			return s.local.Products.UpdateProduct(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "product.updated", updated)

	return updated, nil
}

// DeleteProduct removes a product; unknown ids succeed
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	_, err := remoteFirst(s.logger, "delete product",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Products.DeleteProduct(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Products.DeleteProduct(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "product.deleted", deletedPayload[int64]{ID: id})

	return nil
}

// GenerateProductShareQR renders a QR code PNG linking to the product's
// public page
func (s *catalogService) GenerateProductShareQR(ctx context.Context, id int64) ([]byte, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	baseURL := "https://storefront.local"
	if s.config.QRCode != nil && s.config.QRCode.BaseURL != "" {
		baseURL = s.config.QRCode.BaseURL
	}

	pngBytes, err := s.qrcodeService.GenerateLinkQR(fmt.Sprintf("%s/products/%d", baseURL, product.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product share QR")
	}

	return pngBytes, nil
}
