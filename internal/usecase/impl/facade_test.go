package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLocal(t *testing.T) *memory.Repositories {
	t.Helper()

	return memory.NewRepositories(memory.NewStore(testLogger(), nil))
}

// errUnreachable stands in for any transport-level failure talking to the
// remote backend.
var errUnreachable = errors.New("dial tcp 10.0.0.1:5432: connection refused")

// stubProductRepo answers every call with a fixed error, modeling a backend
// that is either down or rejecting the request.
type stubProductRepo struct {
	err   error
	calls int
}

func (r *stubProductRepo) ListProducts(context.Context) ([]*entity.Product, error) {
	r.calls++

	return nil, r.err
}

func (r *stubProductRepo) FindProductByID(context.Context, int64) (*entity.Product, error) {
	r.calls++

	return nil, r.err
}

func (r *stubProductRepo) CreateProduct(context.Context, *entity.Product) error {
	r.calls++

	return r.err
}

func (r *stubProductRepo) UpdateProduct(context.Context, int64, *repository.ProductPatch) (*entity.Product, error) {
	r.calls++

	return nil, r.err
}

func (r *stubProductRepo) DeleteProduct(context.Context, int64) error {
	r.calls++

	return r.err
}

// recordingNotifier captures published events instead of broadcasting them.
type publishedEvent struct {
	kind    string
	payload any
}

type recordingNotifier struct {
	events     []publishedEvent
	publishErr error
}

func (n *recordingNotifier) Publish(_ context.Context, kind string, payload any) error {
	n.events = append(n.events, publishedEvent{kind: kind, payload: payload})

	return n.publishErr
}

func (n *recordingNotifier) Subscribe(func(string, json.RawMessage)) *service.Subscription {
	return &service.Subscription{}
}

func (n *recordingNotifier) Unsubscribe(*service.Subscription) {}

func (n *recordingNotifier) kinds() []string {
	kinds := make([]string, 0, len(n.events))
	for _, event := range n.events {
		kinds = append(kinds, event.kind)
	}

	return kinds
}

func newCatalogForTest(t *testing.T, remote *postgres.Repositories, notifier *recordingNotifier) usecase.CatalogUsecase {
	t.Helper()

	return NewCatalogService(CatalogServiceParams{
		Remote:        remote,
		Local:         testLocal(t),
		Notifier:      notifier,
		QRCodeService: &stubQRCode{png: []byte("png-bytes")},
		Config:        &config.Config{},
		Logger:        testLogger(),
	})
}

type stubQRCode struct {
	png     []byte
	err     error
	lastURL string
}

func (s *stubQRCode) GenerateLinkQR(url string) ([]byte, error) {
	s.lastURL = url

	return s.png, s.err
}

func TestFacade_NoRemoteServesLocally(t *testing.T) {
	catalog := newCatalogForTest(t, nil, &recordingNotifier{})

	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 5, "local fixtures answer when no backend is configured")
}

func TestFacade_TransportErrorFallsBackToLocal(t *testing.T) {
	remoteProducts := &stubProductRepo{err: errUnreachable}
	remote := &postgres.Repositories{Products: remoteProducts}
	catalog := newCatalogForTest(t, remote, &recordingNotifier{})

	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err, "the caller never sees the transport failure")
	assert.Len(t, products, 5)
	assert.Equal(t, 1, remoteProducts.calls)
}

func TestFacade_RemoteRetriedOnEveryCall(t *testing.T) {
	remoteProducts := &stubProductRepo{err: errUnreachable}
	remote := &postgres.Repositories{Products: remoteProducts}
	catalog := newCatalogForTest(t, remote, &recordingNotifier{})
	ctx := context.Background()

	_, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	_, err = catalog.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, remoteProducts.calls, "no circuit breaker, the remote is retried per call")
}

func TestFacade_DataErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "not found",
			err:      repository.ErrProductNotFound,
			sentinel: repository.ErrProductNotFound,
		},
		{
			name:     "wrapped constraint violation",
			err:      errors.Wrap(repository.ErrConstraintViolated, "category 99 does not exist"),
			sentinel: repository.ErrConstraintViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &postgres.Repositories{Products: &stubProductRepo{err: tt.err}}
			catalog := newCatalogForTest(t, remote, &recordingNotifier{})

			_, err := catalog.GetProduct(context.Background(), 1)
			assert.ErrorIs(t, err, tt.sentinel, "the backend answered, no fallback happens")
		})
	}
}

func TestFacade_DataErrorSuppressesEvent(t *testing.T) {
	notifier := &recordingNotifier{}
	remote := &postgres.Repositories{Products: &stubProductRepo{err: repository.ErrProductNotFound}}
	catalog := newCatalogForTest(t, remote, notifier)

	name := "Renamed"
	_, err := catalog.UpdateProduct(context.Background(), 1, &repository.ProductPatch{Name: &name})
	require.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.Empty(t, notifier.events, "failed mutations publish nothing")
}

func TestFacade_MutationsPublishEvents(t *testing.T) {
	notifier := &recordingNotifier{}
	catalog := newCatalogForTest(t, nil, notifier)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, &entity.Product{Name: "Lychee Juice", Price: 18, CategoryID: 1})
	require.NoError(t, err)

	isActive := true
	_, err = catalog.UpdateProduct(ctx, created.ID, &repository.ProductPatch{IsActive: &isActive})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	assert.Equal(t, []string{"product.created", "product.updated", "product.deleted"}, notifier.kinds())
}

func TestFacade_BroadcastFailureDoesNotFailMutation(t *testing.T) {
	notifier := &recordingNotifier{publishErr: errors.New("medium unavailable")}
	catalog := newCatalogForTest(t, nil, notifier)

	created, err := catalog.CreateProduct(context.Background(), &entity.Product{Name: "Plum Juice", Price: 13, CategoryID: 1})
	require.NoError(t, err, "the write landed, broadcast trouble stays internal")
	assert.NotZero(t, created.ID)
}

func TestFacade_FallbackWriteStillPublishes(t *testing.T) {
	notifier := &recordingNotifier{}
	remote := &postgres.Repositories{Products: &stubProductRepo{err: errUnreachable}}
	catalog := newCatalogForTest(t, remote, notifier)

	created, err := catalog.CreateProduct(context.Background(), &entity.Product{Name: "Pear Juice", Price: 14, CategoryID: 1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, []string{"product.created"}, notifier.kinds())
}

func TestCatalogService_GenerateProductShareQR(t *testing.T) {
	qr := &stubQRCode{png: []byte("png-bytes")}
	catalog := NewCatalogService(CatalogServiceParams{
		Local:         testLocal(t),
		Notifier:      &recordingNotifier{},
		QRCodeService: qr,
		Config:        &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://shop.example.com"}},
		Logger:        testLogger(),
	})

	pngBytes, err := catalog.GenerateProductShareQR(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), pngBytes)
	assert.Equal(t, "https://shop.example.com/products/1", qr.lastURL)
}

func TestCatalogService_GenerateProductShareQRUnknownProduct(t *testing.T) {
	catalog := newCatalogForTest(t, nil, &recordingNotifier{})

	_, err := catalog.GenerateProductShareQR(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
