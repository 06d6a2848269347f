package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *uint
	BrandID    *uint
	Popular    *bool
	Collection *string
}

// ProductRepository exposes product persistence operations.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository constructs a product repo bound to the provided GORM DB.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx rebinds the repo to the provided transaction.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Save persists the product including hook-derived fields.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// FindByID loads a product by primary key.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlug loads a product by its unique slug.
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns a page of products matching the filter, newest first.
func (r *ProductRepository) List(ctx context.Context, filter ProductFilter, page pagination.Params) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		q = q.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Popular != nil {
		q = q.Where("popular = ?", *filter.Popular)
	}
	if filter.Collection != nil {
		q = q.Where("collection = ?", *filter.Collection)
	}

	var products []models.Product
	err := q.Order("id DESC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// DetachCategory clears category_id on every product referencing it.
// Deleting a category must never cascade into the catalog.
func (r *ProductRepository) DetachCategory(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		UpdateColumn("category_id", nil).Error
}

// DetachBrand clears brand_id on every product referencing it.
func (r *ProductRepository) DetachBrand(ctx context.Context, brandID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("brand_id = ?", brandID).
		UpdateColumn("brand_id", nil).Error
}
