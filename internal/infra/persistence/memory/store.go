// Package memory contains the in-process fallback implementation of the
// persistence layer. The store is seeded from fixtures so the console is
// never empty without backend connectivity, and optionally mirrors its
// collections into the durable medium between runs. Stores sharing one
// medium follow each other's snapshots, so separate admin contexts see the
// same data.
package memory

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/kv"

	"go.uber.org/fx"
)

// Snapshot keys in the durable medium, one per collection.
const (
	keyCategories = "store_categories"
	keyProducts   = "store_products"
	keyOrders     = "store_orders"
	keyReviews    = "store_reviews"
	keyPosts      = "store_posts"
	keyUsers      = "store_users"
	keySettings   = "store_settings"
)

// settingsState bundles both singleton concerns for one snapshot key.
type settingsState struct {
	Site  *entity.SiteSettings  `json:"site,omitempty"`
	Pages []entity.PageSettings `json:"pages,omitempty"`
}

// Store holds one mutable collection per entity kind. It is constructed
// explicitly and injected into the repositories; there is no package-level
// state, so each test builds its own isolated instance.
type Store struct {
	mu sync.RWMutex

	categories []entity.Category
	products   []entity.Product
	orders     []entity.Order
	reviews    []entity.Review
	posts      []entity.BlogPost
	users      []entity.User
	site       *entity.SiteSettings
	pages      []entity.PageSettings

	nextCategoryID int64
	nextProductID  int64
	nextOrderID    int64
	nextReviewID   int64
	nextPostID     int64
	nextPageID     int64

	medium kv.Store // nil disables persistence
	logger *slog.Logger
}

// Params defines the dependencies for the fx-provided store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Medium kv.Store
}

// New builds the local store for fx wiring. Persistence follows the
// localStore config section and never changes the CRUD contract.
func New(params Params) *Store {
	medium := kv.Store(nil)
	if params.Config.LocalStore != nil && params.Config.LocalStore.Persist {
		medium = params.Medium
	}

	return NewStore(params.Logger, medium)
}

// NewStore builds a store seeded from fixtures. A non-nil medium enables
// best-effort snapshot persistence and is read back before seeding.
func NewStore(logger *slog.Logger, medium kv.Store) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{medium: medium, logger: logger}
	if !s.load() {
		s.seed()
	}
	s.renumber()
	s.watch()

	return s
}

// Reset discards every collection and restores the fixtures. Intended for
// test isolation.
func (s *Store) Reset() {
	s.mu.Lock()
	s.seed()
	s.renumber()
	s.mu.Unlock()
}

// seed installs the fixture baseline. Callers hold the write lock or have
// exclusive access during construction.
func (s *Store) seed() {
	s.categories = seedCategories()
	s.products = seedProducts()
	s.orders = seedOrders()
	s.reviews = seedReviews()
	s.posts = seedPosts()
	s.users = seedUsers()
	s.site = nil
	s.pages = nil
}

// renumber recomputes the id sequences past every existing id so new ids
// never collide, including after a snapshot reload.
func (s *Store) renumber() {
	s.nextCategoryID = 1
	for _, c := range s.categories {
		if c.ID >= s.nextCategoryID {
			s.nextCategoryID = c.ID + 1
		}
	}
	s.nextProductID = 1
	for _, p := range s.products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
	s.nextOrderID = 1
	for _, o := range s.orders {
		if o.ID >= s.nextOrderID {
			s.nextOrderID = o.ID + 1
		}
	}
	s.nextReviewID = 1
	for _, r := range s.reviews {
		if r.ID >= s.nextReviewID {
			s.nextReviewID = r.ID + 1
		}
	}
	s.nextPostID = 1
	for _, p := range s.posts {
		if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
	}
	s.nextPageID = 1
	for _, p := range s.pages {
		if p.ID >= s.nextPageID {
			s.nextPageID = p.ID + 1
		}
	}
}

// load restores collections from the durable medium. Returns false when
// nothing usable was found and the fixtures should seed instead.
func (s *Store) load() bool {
	if s.medium == nil {
		return false
	}
	ctx := context.Background()

	loaded := false
	loaded = restore(ctx, s, keyCategories, &s.categories) || loaded
	loaded = restore(ctx, s, keyProducts, &s.products) || loaded
	loaded = restore(ctx, s, keyOrders, &s.orders) || loaded
	loaded = restore(ctx, s, keyReviews, &s.reviews) || loaded
	loaded = restore(ctx, s, keyPosts, &s.posts) || loaded
	loaded = restore(ctx, s, keyUsers, &s.users) || loaded

	var settings settingsState
	if restore(ctx, s, keySettings, &settings) {
		s.site = settings.Site
		s.pages = settings.Pages
		loaded = true
	}

	return loaded
}

func restore[T any](ctx context.Context, s *Store, key string, into *T) bool {
	data, err := s.medium.Get(ctx, key)
	if err != nil {
		return false
	}

	return decode(s.logger, key, data, into)
}

func decode[T any](logger *slog.Logger, key string, data []byte, into *T) bool {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		logger.Warn("discarding unreadable store snapshot",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}
	*into = value

	return true
}

// watch subscribes to the snapshot keys so stores sharing a durable medium
// converge on each other's writes without a restart. Watch callbacks run
// outside any store lock, so re-locking here cannot deadlock, and applying
// our own snapshot back is a harmless no-op.
func (s *Store) watch() {
	if s.medium == nil {
		return
	}

	keys := []string{
		keyCategories, keyProducts, keyOrders,
		keyReviews, keyPosts, keyUsers, keySettings,
	}
	for _, key := range keys {
		if _, err := s.medium.Watch(key, func(value []byte) {
			s.applySnapshot(key, value)
		}); err != nil {
			s.logger.Warn("watch store snapshot failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}

// applySnapshot replaces one collection with the snapshot another context
// wrote to the shared medium, then re-seats the id sequences past it.
func (s *Store) applySnapshot(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case keyCategories:
		if !decode(s.logger, key, data, &s.categories) {
			return
		}
	case keyProducts:
		if !decode(s.logger, key, data, &s.products) {
			return
		}
	case keyOrders:
		if !decode(s.logger, key, data, &s.orders) {
			return
		}
	case keyReviews:
		if !decode(s.logger, key, data, &s.reviews) {
			return
		}
	case keyPosts:
		if !decode(s.logger, key, data, &s.posts) {
			return
		}
	case keyUsers:
		if !decode(s.logger, key, data, &s.users) {
			return
		}
	case keySettings:
		var settings settingsState
		if !decode(s.logger, key, data, &settings) {
			return
		}
		s.site = settings.Site
		s.pages = settings.Pages
	default:
		return
	}

	s.renumber()
}

// snapshot mirrors one collection into the durable medium. Best-effort:
// failures are logged and the mutation that triggered it still succeeds.
func (s *Store) snapshot(key string, collection any) {
	if s.medium == nil {
		return
	}

	data, err := json.Marshal(collection)
	if err != nil {
		s.logger.Warn("marshal store snapshot failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}
	if err := s.medium.Set(context.Background(), key, data); err != nil {
		s.logger.Warn("persist store snapshot failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
