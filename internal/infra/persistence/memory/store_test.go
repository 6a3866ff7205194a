package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(testLogger(), nil)
}

func TestStore_SeedsFixtures(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	categories, err := repos.Categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	products, err := repos.Products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)

	orders, err := repos.Orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	reviews, err := repos.Reviews.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	posts, err := repos.Posts.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	users, err := repos.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestStore_CategoriesSortedBySortOrder(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)

	categories, err := repos.Categories.ListCategories(context.Background())
	require.NoError(t, err)
	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].SortOrder, categories[i].SortOrder)
	}
}

func TestProductRepository_CreateAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	first := &entity.Product{Name: "Mango Juice", Price: 16, CategoryID: 1, IsActive: true}
	require.NoError(t, repos.Products.CreateProduct(ctx, first))

	second := &entity.Product{Name: "Guava Juice", Price: 15, CategoryID: 1, IsActive: true}
	require.NoError(t, repos.Products.CreateProduct(ctx, second))

	assert.Equal(t, first.ID+1, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	found, err := repos.Products.FindProductByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mango Juice", found.Name)
}

func TestProductRepository_UpdateMergesPatch(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	original, err := repos.Products.FindProductByID(ctx, 1)
	require.NoError(t, err)

	newPrice := 18.5
	updated, err := repos.Products.UpdateProduct(ctx, 1, &repository.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, original.Name, updated.Name, "untouched fields survive the patch")
	assert.Equal(t, original.CategoryID, updated.CategoryID)
}

func TestProductRepository_UpdateUnknownID(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)

	name := "Ghost"
	_, err := repos.Products.UpdateProduct(context.Background(), 9999, &repository.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	require.NoError(t, repos.Products.DeleteProduct(ctx, 1))
	require.NoError(t, repos.Products.DeleteProduct(ctx, 1), "deleting an already removed id succeeds")
	require.NoError(t, repos.Products.DeleteProduct(ctx, 424242))

	products, err := repos.Products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestProductRepository_ListReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	products, err := repos.Products.ListProducts(ctx)
	require.NoError(t, err)
	products[0].Name = "Mutated"

	again, err := repos.Products.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", again[0].Name, "callers must not reach the stored values")
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	err := repos.Users.CreateUser(ctx, &entity.User{Email: "ADMIN@storefront.local", Name: "Impostor"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_GeneratesIDAndDefaultRole(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)

	user := &entity.User{Email: "new@storefront.local", Name: "New User"}
	require.NoError(t, repos.Users.CreateUser(context.Background(), user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestSettingsRepository_UpsertKeepsSingleRow(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	_, err := repos.Settings.GetSiteSettings(ctx)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	first, err := repos.Settings.UpsertSiteSettings(ctx, &entity.SiteSettings{SiteName: "Fresh Corner"})
	require.NoError(t, err)
	assert.Equal(t, entity.SettingsID, first.ID)

	second, err := repos.Settings.UpsertSiteSettings(ctx, &entity.SiteSettings{SiteName: "Fresh Corner 2"})
	require.NoError(t, err)
	assert.Equal(t, entity.SettingsID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "creation timestamp survives upserts")

	current, err := repos.Settings.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Corner 2", current.SiteName)
}

func TestSettingsRepository_PageSettingsKeyedByPage(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	home, err := repos.Settings.UpsertPageSettings(ctx, &entity.PageSettings{Page: "home", Title: "Welcome"})
	require.NoError(t, err)

	menu, err := repos.Settings.UpsertPageSettings(ctx, &entity.PageSettings{Page: "menu", Title: "Our Menu"})
	require.NoError(t, err)
	assert.NotEqual(t, home.ID, menu.ID)

	replaced, err := repos.Settings.UpsertPageSettings(ctx, &entity.PageSettings{Page: "home", Title: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, home.ID, replaced.ID, "same page keeps its row")

	fetched, err := repos.Settings.GetPageSettings(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Hello", fetched.Title)
}

func TestStore_PersistsThroughMedium(t *testing.T) {
	medium := kv.NewMemoryStore()
	defer medium.Close()

	first := NewStore(testLogger(), medium)
	repos := NewRepositories(first)
	ctx := context.Background()

	created := &entity.Product{Name: "Kiwi Juice", Price: 17, CategoryID: 1, IsActive: true}
	require.NoError(t, repos.Products.CreateProduct(ctx, created))

	// A second store over the same medium starts from the snapshot, not the
	// fixtures.
	second := NewStore(testLogger(), medium)
	reloaded, err := NewRepositories(second).Products.FindProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kiwi Juice", reloaded.Name)
}

func TestStore_SharedMediumCrossContextVisibility(t *testing.T) {
	medium := kv.NewMemoryStore()
	defer medium.Close()

	// Both stores exist before either writes, as two live admin contexts do.
	storeA := NewStore(testLogger(), medium)
	storeB := NewStore(testLogger(), medium)
	reposA := NewRepositories(storeA)
	reposB := NewRepositories(storeB)
	ctx := context.Background()

	created := &entity.Product{Name: "Dragonfruit Juice", Price: 19, CategoryID: 1, IsActive: true}
	require.NoError(t, reposA.Products.CreateProduct(ctx, created))

	// The memory medium dispatches watches synchronously, so the other
	// context has converged by the time CreateProduct returns.
	found, err := reposB.Products.FindProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dragonfruit Juice", found.Name)

	// The follower's id sequence moves past the reloaded snapshot, so its
	// own next write cannot collide, and it flows back the other way.
	next := &entity.Product{Name: "Starfruit Juice", Price: 21, CategoryID: 1, IsActive: true}
	require.NoError(t, reposB.Products.CreateProduct(ctx, next))
	assert.Greater(t, next.ID, created.ID)

	back, err := reposA.Products.FindProductByID(ctx, next.ID)
	require.NoError(t, err)
	assert.Equal(t, "Starfruit Juice", back.Name)
}

func TestStore_ResetRestoresFixtures(t *testing.T) {
	store := newTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	require.NoError(t, repos.Products.DeleteProduct(ctx, 1))
	store.Reset()

	products, err := repos.Products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}
