package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/enums"
)

// ProductInput carries the caller-provided product fields. The slug is
// derived from the name and never accepted from the caller.
type ProductInput struct {
	Name                *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	ProductCode         *string         `json:"product_code,omitempty" validate:"omitempty,max=10"`
	SimilarProductCodes string          `json:"similar_product_codes" validate:"max=300"`
	Type                *string         `json:"type,omitempty" validate:"omitempty,max=100"`
	CategoryID          *uint           `json:"category_id,omitempty"`
	Image               string          `json:"image" validate:"required"`
	Description         string          `json:"description" validate:"required"`
	Price               decimal.Decimal `json:"price"`
	Stock               int             `json:"stock" validate:"gte=0"`
	Color               *string         `json:"color,omitempty" validate:"omitempty,max=100"`
	Size                *string         `json:"size,omitempty" validate:"omitempty,max=20"`
	Rating              int             `json:"rating" validate:"gte=0,lte=5"`
	Popular             *bool           `json:"popular,omitempty"`
	BrandID             *uint           `json:"brand_id,omitempty"`
	Digital             *bool           `json:"digital,omitempty"`
	Collection          *string         `json:"collection,omitempty" validate:"omitempty,max=100"`
}

func (in ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.ProductCode = in.ProductCode
	p.SimilarProductCodes = in.SimilarProductCodes
	p.Type = in.Type
	p.CategoryID = in.CategoryID
	p.Image = in.Image
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Color = in.Color
	p.Size = in.Size
	p.Rating = in.Rating
	p.Popular = in.Popular
	p.BrandID = in.BrandID
	p.Digital = in.Digital
	p.Collection = in.Collection
}

// PhotoInput carries the caller-provided fields for the legacy photo catalog.
type PhotoInput struct {
	Name            *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	ProductCode     *string         `json:"product_code,omitempty"`
	NameLink        *string         `json:"name_link,omitempty" validate:"omitempty,max=200"`
	SimilarProducts string          `json:"similar_products" validate:"max=300"`
	Type            *string         `json:"type,omitempty" validate:"omitempty,max=100"`
	CategoryID      *uint           `json:"category_id,omitempty"`
	Image           string          `json:"image" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock" validate:"gte=0"`
	Color           *string         `json:"color,omitempty" validate:"omitempty,max=75"`
	Size            *string         `json:"size,omitempty" validate:"omitempty,max=50"`
	Rating          int             `json:"rating" validate:"gte=0,lte=5"`
	Popular         *bool           `json:"popular,omitempty"`
	Shop            *enums.Shop     `json:"shop,omitempty"`
	Digital         *bool           `json:"digital,omitempty"`
}

func (in PhotoInput) apply(p *models.Photo) {
	p.Name = in.Name
	p.ProductCode = in.ProductCode
	p.NameLink = in.NameLink
	p.SimilarProducts = in.SimilarProducts
	p.Type = in.Type
	p.CategoryID = in.CategoryID
	p.Image = in.Image
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Color = in.Color
	p.Size = in.Size
	p.Rating = in.Rating
	p.Popular = in.Popular
	p.Shop = in.Shop
	p.Digital = in.Digital
}

// CategoryInput carries the caller-provided category fields.
type CategoryInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Icon *string `json:"icon,omitempty" validate:"omitempty,max=50"`
}

// BrandInput carries the caller-provided brand fields.
type BrandInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Keywords *string `json:"keywords,omitempty"`
	Image    *string `json:"image,omitempty"`
}
