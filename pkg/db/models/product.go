package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the canonical catalog item. The slug is unique and derived
// from the name on every save.
type Product struct {
	ID                  uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name                *string         `gorm:"column:name;size:200"`
	ProductCode         *string         `gorm:"column:product_code;size:10"`
	SimilarProductCodes string          `gorm:"column:similar_product_codes;size:300"`
	Type                *string         `gorm:"column:type;size:100"`
	CategoryID          *uint           `gorm:"column:category_id"`
	Category            *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Image               string          `gorm:"column:image;not null"`
	Description         string          `gorm:"column:description;type:text;not null"`
	Price               decimal.Decimal `gorm:"column:price;type:numeric(7,2);not null;default:0"`
	Stock               int             `gorm:"column:stock;not null;default:0"`
	Color               *string         `gorm:"column:color;size:100"`
	Size                *string         `gorm:"column:size;size:20"`
	Rating              int             `gorm:"column:rating;not null;default:0"`
	Popular             *bool           `gorm:"column:popular;default:false"`
	BrandID             *uint           `gorm:"column:brand_id"`
	Brand               *Brand          `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Digital             *bool           `gorm:"column:digital;default:false"`
	Collection          *string         `gorm:"column:collection;size:100"`
	Slug                *string         `gorm:"column:slug;uniqueIndex"`
}

// BeforeSave recomputes the slug from the current name on every save.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Name != nil {
		p.Slug = slugOrNil(*p.Name)
	} else {
		p.Slug = nil
	}
	return nil
}

// IsDigital treats a missing flag as physical goods.
func (p *Product) IsDigital() bool {
	return p.Digital != nil && *p.Digital
}
