package blog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/internal/media"
	"github.com/lukustore/lukustore-backend/pkg/db"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// CreateArticleInput carries the author-provided fields for a new article.
type CreateArticleInput struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Summary    string  `json:"summary" validate:"required,max=500"`
	Content    string  `json:"content" validate:"required"`
	Author     string  `json:"author" validate:"required,max=200"`
	Keywords   *string `json:"keywords,omitempty"`
	Image      *string `json:"image,omitempty"`
	YouTube    *string `json:"youtube,omitempty"`
	ContentOne *string `json:"content_one,omitempty"`
	ContentTwo *string `json:"content_two,omitempty"`
}

// UpdateArticleInput mirrors CreateArticleInput for edits. The slug is
// never accepted from the caller; it follows the title.
type UpdateArticleInput = CreateArticleInput

// Service exposes the blog operations used by the API layer.
type Service interface {
	Create(ctx context.Context, input CreateArticleInput) (*models.Blog, error)
	Update(ctx context.Context, id uint, input UpdateArticleInput) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, page pagination.Params) ([]models.Blog, error)
	Delete(ctx context.Context, id uint) error
}

// Placeholders resolves the fallback image stored when an article carries
// no upload of its own.
type Placeholders interface {
	DefaultFor(ctx context.Context, entity media.Entity) (string, error)
}

// Option tweaks optional service wiring.
type Option func(*service)

// WithPlaceholders enables placeholder images for articles created without one.
func WithPlaceholders(p Placeholders) Option {
	return func(s *service) { s.placeholders = p }
}

type service struct {
	repo         *Repository
	placeholders Placeholders
}

// NewService builds a blog service over the provided repo.
func NewService(repo *Repository, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blog repository required")
	}
	s := &service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) fillPlaceholder(ctx context.Context, image *string) *string {
	if image != nil && strings.TrimSpace(*image) != "" {
		return image
	}
	if s.placeholders == nil {
		return image
	}
	filename, err := s.placeholders.DefaultFor(ctx, media.EntityBlog)
	if err != nil || filename == "" {
		return image
	}
	objectPath, err := media.ObjectPath(media.EntityBlog, filename)
	if err != nil {
		return image
	}
	return &objectPath
}

func (s *service) Create(ctx context.Context, input CreateArticleInput) (*models.Blog, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	article := &models.Blog{
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		Author:     input.Author,
		Keywords:   input.Keywords,
		Image:      s.fillPlaceholder(ctx, input.Image),
		YouTube:    input.YouTube,
		ContentOne: input.ContentOne,
		ContentTwo: input.ContentTwo,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		if db.IsUniqueViolation(err, "slug") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an article with this title already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create article")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateArticleInput) (*models.Blog, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "article not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load article")
	}

	article.Title = input.Title
	article.Summary = input.Summary
	article.Content = input.Content
	article.Author = input.Author
	article.Keywords = input.Keywords
	article.Image = s.fillPlaceholder(ctx, input.Image)
	article.YouTube = input.YouTube
	article.ContentOne = input.ContentOne
	article.ContentTwo = input.ContentTwo

	if err := s.repo.Save(ctx, article); err != nil {
		if db.IsUniqueViolation(err, "slug") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an article with this title already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update article")
	}
	return article, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	article, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "article not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load article")
	}
	return article, nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]models.Blog, error) {
	articles, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list articles")
	}
	return articles, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "article not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load article")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete article")
	}
	return nil
}
