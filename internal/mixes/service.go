package mixes

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/internal/media"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// MixInput carries the caller-provided mix metadata. Counters are owned by
// the service and never accepted from the caller.
type MixInput struct {
	Title           string    `json:"title" validate:"required,max=100"`
	MixArtist       string    `json:"mix_artist" validate:"required,max=100"`
	FeaturedArtists string    `json:"featured_artists"`
	Image           *string   `json:"image,omitempty"`
	Genre           string    `json:"genre" validate:"required,max=100"`
	ReleaseDate     time.Time `json:"release_date" validate:"required"`
	File            *string   `json:"file,omitempty"`
	StreamLink      *string   `json:"stream_link,omitempty"`
}

// VideoInput carries a titled video file reference.
type VideoInput struct {
	Title     string `json:"title" validate:"required,max=100"`
	VideoFile string `json:"video_file" validate:"required"`
}

// Service exposes mix and video operations used by the API layer.
type Service interface {
	CreateMix(ctx context.Context, input MixInput) (*models.Mix, error)
	UpdateMix(ctx context.Context, id uint, input MixInput) (*models.Mix, error)
	GetMix(ctx context.Context, id uint) (*models.Mix, error)
	ListMixes(ctx context.Context, page pagination.Params) ([]models.Mix, error)
	DeleteMix(ctx context.Context, id uint) error
	BumpCounter(ctx context.Context, id uint, counter Counter) error

	CreateVideo(ctx context.Context, input VideoInput) (*models.Video, error)
	ListVideos(ctx context.Context) ([]models.Video, error)
	DeleteVideo(ctx context.Context, id uint) error
}

// Placeholders resolves the fallback cover stored when a mix carries no
// artwork of its own.
type Placeholders interface {
	DefaultFor(ctx context.Context, entity media.Entity) (string, error)
}

// Option tweaks optional service wiring.
type Option func(*service)

// WithPlaceholders enables placeholder covers for mixes created without one.
func WithPlaceholders(p Placeholders) Option {
	return func(s *service) { s.placeholders = p }
}

type service struct {
	repo         *Repository
	placeholders Placeholders
}

// NewService builds a mixes service over the provided repo.
func NewService(repo *Repository, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "mixes repository required")
	}
	s := &service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) fillCover(ctx context.Context, image *string) *string {
	if image != nil && strings.TrimSpace(*image) != "" {
		return image
	}
	if s.placeholders == nil {
		return image
	}
	filename, err := s.placeholders.DefaultFor(ctx, media.EntityMix)
	if err != nil || filename == "" {
		return image
	}
	objectPath, err := media.ObjectPath(media.EntityMix, filename)
	if err != nil {
		return image
	}
	return &objectPath
}

func (in MixInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(in.MixArtist) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "mix artist is required")
	}
	if strings.TrimSpace(in.Genre) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "genre is required")
	}
	if in.ReleaseDate.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "release date is required")
	}
	return nil
}

func (in MixInput) apply(mix *models.Mix) {
	mix.Title = in.Title
	mix.MixArtist = in.MixArtist
	mix.FeaturedArtists = in.FeaturedArtists
	mix.Image = in.Image
	mix.Genre = in.Genre
	mix.ReleaseDate = in.ReleaseDate
	mix.File = in.File
	mix.StreamLink = in.StreamLink
}

func (s *service) CreateMix(ctx context.Context, input MixInput) (*models.Mix, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	mix := &models.Mix{}
	input.apply(mix)
	mix.Image = s.fillCover(ctx, mix.Image)

	created, err := s.repo.CreateMix(ctx, mix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create mix")
	}
	return created, nil
}

func (s *service) UpdateMix(ctx context.Context, id uint, input MixInput) (*models.Mix, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	mix, err := s.repo.FindMixByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "mix not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load mix")
	}

	input.apply(mix)
	mix.Image = s.fillCover(ctx, mix.Image)
	if err := s.repo.SaveMix(ctx, mix); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update mix")
	}
	return mix, nil
}

func (s *service) GetMix(ctx context.Context, id uint) (*models.Mix, error) {
	mix, err := s.repo.FindMixByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "mix not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load mix")
	}
	return mix, nil
}

func (s *service) ListMixes(ctx context.Context, page pagination.Params) ([]models.Mix, error) {
	mixes, err := s.repo.ListMixes(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list mixes")
	}
	return mixes, nil
}

func (s *service) DeleteMix(ctx context.Context, id uint) error {
	if _, err := s.repo.FindMixByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "mix not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load mix")
	}
	if err := s.repo.DeleteMix(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete mix")
	}
	return nil
}

// BumpCounter records a play, favorite or download.
func (s *service) BumpCounter(ctx context.Context, id uint, counter Counter) error {
	if !counter.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown counter")
	}

	affected, err := s.repo.BumpCounter(ctx, id, counter)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bump counter")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "mix not found")
	}
	return nil
}

func (s *service) CreateVideo(ctx context.Context, input VideoInput) (*models.Video, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(input.VideoFile) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "video file is required")
	}

	video, err := s.repo.CreateVideo(ctx, &models.Video{Title: input.Title, VideoFile: input.VideoFile})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create video")
	}
	return video, nil
}

func (s *service) ListVideos(ctx context.Context) ([]models.Video, error) {
	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list videos")
	}
	return videos, nil
}

func (s *service) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.repo.DeleteVideo(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete video")
	}
	return nil
}
