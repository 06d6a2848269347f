package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

const productSlugScope = "product_slug"

// maxPrice mirrors the numeric(7,2) price column.
var maxPrice = decimal.NewFromInt(100000)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SlugCache is the subset of the redis client the catalog uses to cache
// slug lookups. A nil cache disables caching.
type SlugCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(scope, id string) string
}

// Service exposes the catalog operations used by the API layer.
type Service interface {
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, input ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, page pagination.Params) ([]models.Product, error)

	CreatePhoto(ctx context.Context, input PhotoInput) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, id uint, input PhotoInput) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id uint) error
	ListPhotos(ctx context.Context, filter PhotoFilter, page pagination.Params) ([]models.Photo, error)

	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateBrand(ctx context.Context, input BrandInput) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	DeleteBrand(ctx context.Context, id uint) error
}

// ServiceParams packages the catalog service dependencies.
type ServiceParams struct {
	Products   *ProductRepository
	Photos     *PhotoRepository
	Categories *CategoryRepository
	Brands     *BrandRepository
	Tx         txRunner
	Cache      SlugCache
	CacheTTL   time.Duration
}

type service struct {
	products   *ProductRepository
	photos     *PhotoRepository
	categories *CategoryRepository
	brands     *BrandRepository
	tx         txRunner
	cache      SlugCache
	cacheTTL   time.Duration
}

// NewService builds a catalog service with the provided dependencies.
// The cache is optional; everything else is required.
func NewService(params ServiceParams) (Service, error) {
	if params.Products == nil || params.Photos == nil || params.Categories == nil || params.Brands == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repositories required")
	}
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &service{
		products:   params.Products,
		photos:     params.Photos,
		categories: params.Categories,
		brands:     params.Brands,
		tx:         params.Tx,
		cache:      params.Cache,
		cacheTTL:   params.CacheTTL,
	}, nil
}

func validPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return pkgerrors.New(pkgerrors.CodeValidation, "price exceeds the supported range")
	}
	return nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validPrice(input.Price); err != nil {
		return nil, err
	}

	product := &models.Product{}
	input.apply(product)

	created, err := s.products.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "slug") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a product with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	if err := validPrice(input.Price); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	oldSlug := product.Slug
	input.apply(product)

	if err := s.products.Save(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "slug") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a product with this name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	s.invalidateSlug(ctx, oldSlug)
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}

	s.invalidateSlug(ctx, product.Slug)
	return nil
}

// GetProductBySlug resolves a slug to a product, consulting the cache
// first. A cached id whose product no longer carries the slug falls back
// to the database so renames never serve stale hits.
func (s *service) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}

	// cache misses and cache trouble both fall through to the database
	if s.cache != nil {
		key := s.cache.CacheKey(productSlugScope, slug)
		if val, err := s.cache.Get(ctx, key); err == nil {
			if id, perr := strconv.ParseUint(val, 10, 64); perr == nil {
				if product, ferr := s.products.FindByID(ctx, uint(id)); ferr == nil &&
					product.Slug != nil && *product.Slug == slug {
					return product, nil
				}
			}
		}
	}

	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if s.cache != nil {
		key := s.cache.CacheKey(productSlugScope, slug)
		_ = s.cache.Set(ctx, key, strconv.FormatUint(uint64(product.ID), 10), s.cacheTTL)
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter, page pagination.Params) ([]models.Product, error) {
	products, err := s.products.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return products, nil
}

func (s *service) CreatePhoto(ctx context.Context, input PhotoInput) (*models.Photo, error) {
	if err := validPrice(input.Price); err != nil {
		return nil, err
	}
	if input.Shop != nil && !input.Shop.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shop")
	}

	photo := &models.Photo{}
	input.apply(photo)

	created, err := s.photos.Create(ctx, photo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create photo")
	}
	return created, nil
}

func (s *service) UpdatePhoto(ctx context.Context, id uint, input PhotoInput) (*models.Photo, error) {
	if err := validPrice(input.Price); err != nil {
		return nil, err
	}
	if input.Shop != nil && !input.Shop.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shop")
	}

	photo, err := s.photos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load photo")
	}

	input.apply(photo)
	if err := s.photos.Save(ctx, photo); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update photo")
	}
	return photo, nil
}

func (s *service) DeletePhoto(ctx context.Context, id uint) error {
	if _, err := s.photos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load photo")
	}
	if err := s.photos.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete photo")
	}
	return nil
}

func (s *service) ListPhotos(ctx context.Context, filter PhotoFilter, page pagination.Params) ([]models.Photo, error) {
	photos, err := s.photos.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list photos")
	}
	return photos, nil
}

func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	category, err := s.categories.Create(ctx, &models.Category{Name: input.Name, Icon: input.Icon})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return category, nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return categories, nil
}

// DeleteCategory detaches every product and photo referencing the category
// before removing the row, all in one transaction. Catalog rows survive
// taxonomy deletions with a NULL reference.
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.products.WithTx(tx).DetachCategory(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "detach products")
		}
		if err := s.photos.WithTx(tx).DetachCategory(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "detach photos")
		}
		if err := s.categories.WithTx(tx).Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
		}
		return nil
	})
}

func (s *service) CreateBrand(ctx context.Context, input BrandInput) (*models.Brand, error) {
	brand, err := s.brands.Create(ctx, &models.Brand{Name: input.Name, Keywords: input.Keywords, Image: input.Image})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create brand")
	}
	return brand, nil
}

func (s *service) ListBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list brands")
	}
	return brands, nil
}

// DeleteBrand detaches every product referencing the brand before removing
// the row, all in one transaction.
func (s *service) DeleteBrand(ctx context.Context, id uint) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load brand")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.products.WithTx(tx).DetachBrand(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "detach products")
		}
		if err := s.brands.WithTx(tx).Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete brand")
		}
		return nil
	})
}

func (s *service) invalidateSlug(ctx context.Context, slug *string) {
	if s.cache == nil || slug == nil || *slug == "" {
		return
	}
	_ = s.cache.Del(ctx, s.cache.CacheKey(productSlugScope, *slug))
}
