package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

type fakeSlugCache struct {
	data map[string]string
	gets int
	sets int
	dels []string
}

func newFakeSlugCache() *fakeSlugCache {
	return &fakeSlugCache{data: map[string]string{}}
}

func (f *fakeSlugCache) Get(_ context.Context, key string) (string, error) {
	f.gets++
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (f *fakeSlugCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.sets++
	f.data[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeSlugCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		f.dels = append(f.dels, key)
	}
	return nil
}

func (f *fakeSlugCache) CacheKey(scope, id string) string {
	return "luku:cache:" + scope + ":" + id
}

func newCatalogFixture(t *testing.T) (Service, *gorm.DB, *fakeSlugCache) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	cache := newFakeSlugCache()
	svc, err := NewService(ServiceParams{
		Products:   NewProductRepository(gdb),
		Photos:     NewPhotoRepository(gdb),
		Categories: NewCategoryRepository(gdb),
		Brands:     NewBrandRepository(gdb),
		Tx:         gormTxRunner{db: gdb},
		Cache:      cache,
		CacheTTL:   time.Minute,
	})
	require.NoError(t, err)
	return svc, gdb, cache
}

func strPtr(s string) *string { return &s }

func productInput(name string) ProductInput {
	return ProductInput{
		Name:        strPtr(name),
		Image:       "products/" + name + ".jpg",
		Description: "desc",
		Price:       decimal.RequireFromString("49.99"),
		Stock:       3,
	}
}

func TestCreateProductDerivesSlug(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, productInput("Blue Hoodie"))
	require.NoError(t, err)
	require.NotNil(t, product.Slug)
	require.Equal(t, "blue-hoodie", *product.Slug)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	in := productInput("Overpriced")
	in.Price = decimal.RequireFromString("100000.00")
	_, err := svc.CreateProduct(ctx, in)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	in.Price = decimal.RequireFromString("-1")
	_, err = svc.CreateProduct(ctx, in)
	require.Error(t, err)
}

func TestGetProductBySlugUsesCache(t *testing.T) {
	svc, _, cache := newCatalogFixture(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, productInput("Blue Hoodie"))
	require.NoError(t, err)

	first, err := svc.GetProductBySlug(ctx, "blue-hoodie")
	require.NoError(t, err)
	require.Equal(t, created.ID, first.ID)
	require.Equal(t, 1, cache.sets)

	second, err := svc.GetProductBySlug(ctx, "blue-hoodie")
	require.NoError(t, err)
	require.Equal(t, created.ID, second.ID)
	require.Equal(t, 1, cache.sets) // served from cache, no refresh
}

func TestRenameInvalidatesCachedSlug(t *testing.T) {
	svc, _, cache := newCatalogFixture(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, productInput("Blue Hoodie"))
	require.NoError(t, err)

	_, err = svc.GetProductBySlug(ctx, "blue-hoodie")
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, created.ID, productInput("Blue Hoodie v2"))
	require.NoError(t, err)
	require.Contains(t, cache.dels, "luku:cache:product_slug:blue-hoodie")

	_, err = svc.GetProductBySlug(ctx, "blue-hoodie")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	renamed, err := svc.GetProductBySlug(ctx, "blue-hoodie-v2")
	require.NoError(t, err)
	require.Equal(t, created.ID, renamed.ID)
}

func TestDeleteCategoryDetachesCatalogRows(t *testing.T) {
	svc, gdb, _ := newCatalogFixture(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CategoryInput{Name: strPtr("Hoodies")})
	require.NoError(t, err)

	in := productInput("Blue Hoodie")
	in.CategoryID = &category.ID
	product, err := svc.CreateProduct(ctx, in)
	require.NoError(t, err)

	photo, err := svc.CreatePhoto(ctx, PhotoInput{
		Name:        strPtr("Lookbook Shot"),
		CategoryID:  &category.ID,
		Image:       "media/lookbook.jpg",
		Description: "desc",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	var reloadedProduct models.Product
	require.NoError(t, gdb.First(&reloadedProduct, product.ID).Error)
	require.Nil(t, reloadedProduct.CategoryID)

	var reloadedPhoto models.Photo
	require.NoError(t, gdb.First(&reloadedPhoto, photo.ID).Error)
	require.Nil(t, reloadedPhoto.CategoryID)

	var count int64
	require.NoError(t, gdb.Model(&models.Category{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteBrandDetachesProducts(t *testing.T) {
	svc, gdb, _ := newCatalogFixture(t)
	ctx := context.Background()

	brand, err := svc.CreateBrand(ctx, BrandInput{Name: strPtr("Akiba")})
	require.NoError(t, err)

	in := productInput("Akiba Tee")
	in.BrandID = &brand.ID
	product, err := svc.CreateProduct(ctx, in)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBrand(ctx, brand.ID))

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, product.ID).Error)
	require.Nil(t, reloaded.BrandID)
}

func TestListProductsFilters(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	popular := true
	in := productInput("Star Item")
	in.Popular = &popular
	_, err := svc.CreateProduct(ctx, in)
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, productInput("Plain Item"))
	require.NoError(t, err)

	listed, err := svc.ListProducts(ctx, ProductFilter{Popular: &popular}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Star Item", *listed[0].Name)
}
