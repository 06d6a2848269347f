package blog

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// Repository exposes blog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a blog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new article.
func (r *Repository) Create(ctx context.Context, article *models.Blog) (*models.Blog, error) {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Save persists the article including hook-derived fields.
func (r *Repository) Save(ctx context.Context, article *models.Blog) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// FindByID loads an article by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	var article models.Blog
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBySlug loads an article by its unique slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var article models.Blog
	if err := r.db.WithContext(ctx).First(&article, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns a page of articles, newest first.
func (r *Repository) List(ctx context.Context, page pagination.Params) ([]models.Blog, error) {
	var articles []models.Blog
	err := r.db.WithContext(ctx).
		Order("pub_date DESC, id DESC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Delete removes an article.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id).Error
}
