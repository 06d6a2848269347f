// Package media holds the upload-path conventions and placeholder
// registry for image and file references. Rows store paths only; the
// actual files live with an external store.
package media

import (
	"context"
	"errors"
	"path"
	"strings"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
)

// Entity names the media-bearing kinds of the site.
type Entity string

const (
	EntityBlog     Entity = "blog"
	EntityAboutUs  Entity = "about_us"
	EntityPhoto    Entity = "photo"
	EntityCustomer Entity = "customer"
	EntityBrand    Entity = "brand"
	EntityProduct  Entity = "product"
	EntityHomePage Entity = "home_page"
	EntityMix      Entity = "mix"
	EntityVideo    Entity = "video"
)

// uploadPrefixes maps each entity onto its upload directory.
var uploadPrefixes = map[Entity]string{
	EntityBlog:     "blog",
	EntityAboutUs:  "about-us",
	EntityPhoto:    "media",
	EntityCustomer: "media",
	EntityBrand:    "brand",
	EntityProduct:  "products",
	EntityHomePage: "media",
	EntityMix:      "mix",
	EntityVideo:    "videos",
}

// compiledDefaults back the registry when the media_defaults table has no
// row for an entity. Videos carry no placeholder.
var compiledDefaults = map[Entity]string{
	EntityBlog:     "blog.jpg",
	EntityAboutUs:  "image.jpg",
	EntityPhoto:    "image.jpg",
	EntityCustomer: "image.jpg",
	EntityBrand:    "blog.jpg",
	EntityProduct:  "image.jpg",
	EntityHomePage: "image.jpg",
	EntityMix:      "mix-cover.jpg",
}

// IsValid reports whether the entity has an upload convention.
func (e Entity) IsValid() bool {
	_, ok := uploadPrefixes[e]
	return ok
}

// ObjectPath builds the storage path for an uploaded file, prefixing the
// entity's upload directory and stripping any directory components the
// caller smuggled into the filename.
func ObjectPath(entity Entity, filename string) (string, error) {
	prefix, ok := uploadPrefixes[entity]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown media entity")
	}

	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "" || base == "." || base == "/" || base == ".." {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "filename is required")
	}
	return prefix + "/" + base, nil
}

// Registry resolves placeholder assets: DB-backed MediaDefault rows with
// compiled-in fallbacks, so rows stay renderable before any upload.
type Registry struct {
	db *gorm.DB
}

// NewRegistry constructs a registry bound to the provided GORM DB.
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// DefaultFor returns the placeholder path for an entity. A missing row
// falls back to the compiled default; entities without one return an empty
// path and no error.
func (r *Registry) DefaultFor(ctx context.Context, entity Entity) (string, error) {
	if !entity.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown media entity")
	}

	var row models.MediaDefault
	err := r.db.WithContext(ctx).First(&row, "entity = ?", string(entity)).Error
	if err == nil {
		return row.Path, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load media default")
	}
	return compiledDefaults[entity], nil
}

// SetDefault upserts the placeholder path for an entity.
func (r *Registry) SetDefault(ctx context.Context, entity Entity, assetPath string) error {
	if !entity.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown media entity")
	}
	if strings.TrimSpace(assetPath) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "asset path is required")
	}

	var row models.MediaDefault
	err := r.db.WithContext(ctx).First(&row, "entity = ?", string(entity)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.MediaDefault{Entity: string(entity), Path: assetPath}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store media default")
		}
		return nil
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load media default")
	}

	row.Path = assetPath
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update media default")
	}
	return nil
}
