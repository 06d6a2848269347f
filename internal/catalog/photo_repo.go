package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/enums"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// PhotoFilter narrows photo listings.
type PhotoFilter struct {
	CategoryID *uint
	Shop       *enums.Shop
	Popular    *bool
}

// PhotoRepository exposes persistence for the legacy photo catalog.
type PhotoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository constructs a photo repo bound to the provided GORM DB.
func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// WithTx rebinds the repo to the provided transaction.
func (r *PhotoRepository) WithTx(tx *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: tx}
}

// Create inserts a new photo.
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// Save persists the photo including hook-derived fields.
func (r *PhotoRepository) Save(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

// FindByID loads a photo by primary key.
func (r *PhotoRepository) FindByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// List returns a page of photos matching the filter, newest first.
func (r *PhotoRepository) List(ctx context.Context, filter PhotoFilter, page pagination.Params) ([]models.Photo, error) {
	q := r.db.WithContext(ctx).Model(&models.Photo{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Shop != nil {
		q = q.Where("shop = ?", *filter.Shop)
	}
	if filter.Popular != nil {
		q = q.Where("popular = ?", *filter.Popular)
	}

	var photos []models.Photo
	err := q.Order("id DESC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// Delete removes a photo.
func (r *PhotoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Photo{}, "id = ?", id).Error
}

// DetachCategory clears category_id on every photo referencing it.
func (r *PhotoRepository) DetachCategory(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("category_id = ?", categoryID).
		UpdateColumn("category_id", nil).Error
}
