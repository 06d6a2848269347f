package mixes

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// Counter names map onto the engagement columns of a mix.
type Counter string

const (
	CounterPlay     Counter = "play_count"
	CounterFavorite Counter = "favorite_count"
	CounterDownload Counter = "download_count"
)

// IsValid reports whether the counter maps to a known column.
func (c Counter) IsValid() bool {
	switch c {
	case CounterPlay, CounterFavorite, CounterDownload:
		return true
	default:
		return false
	}
}

// Repository exposes mix and video persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a mixes repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateMix inserts a new mix.
func (r *Repository) CreateMix(ctx context.Context, mix *models.Mix) (*models.Mix, error) {
	if err := r.db.WithContext(ctx).Create(mix).Error; err != nil {
		return nil, err
	}
	return mix, nil
}

// SaveMix persists the mix.
func (r *Repository) SaveMix(ctx context.Context, mix *models.Mix) error {
	return r.db.WithContext(ctx).Save(mix).Error
}

// FindMixByID loads a mix by primary key.
func (r *Repository) FindMixByID(ctx context.Context, id uint) (*models.Mix, error) {
	var mix models.Mix
	if err := r.db.WithContext(ctx).First(&mix, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mix, nil
}

// ListMixes returns a page of mixes, newest release first.
func (r *Repository) ListMixes(ctx context.Context, page pagination.Params) ([]models.Mix, error) {
	var mixes []models.Mix
	err := r.db.WithContext(ctx).
		Order("release_date DESC, id DESC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&mixes).Error
	if err != nil {
		return nil, err
	}
	return mixes, nil
}

// DeleteMix removes a mix.
func (r *Repository) DeleteMix(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Mix{}, "id = ?", id).Error
}

// BumpCounter increments the named counter atomically in SQL so concurrent
// listeners never lose an increment. Returns the affected row count.
func (r *Repository) BumpCounter(ctx context.Context, id uint, counter Counter) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Mix{}).
		Where("id = ?", id).
		UpdateColumn(string(counter), gorm.Expr(string(counter)+" + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// CreateVideo inserts a new video reference.
func (r *Repository) CreateVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// ListVideos returns every video, newest first.
func (r *Repository) ListVideos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// DeleteVideo removes a video reference.
func (r *Repository) DeleteVideo(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Video{}, "id = ?", id).Error
}
