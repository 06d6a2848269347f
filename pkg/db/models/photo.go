package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/enums"
)

// Photo is the legacy catalog entity that predates Product. It keeps the
// same pricing/stock fields and its own slug, and still backs a couple of
// older display pages.
type Photo struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name            *string         `gorm:"column:name;size:200"`
	ProductCode     *string         `gorm:"column:product_code;type:text"`
	NameLink        *string         `gorm:"column:name_link;size:200"`
	SimilarProducts string          `gorm:"column:similar_products;size:300"`
	Type            *string         `gorm:"column:type;size:100"`
	CategoryID      *uint           `gorm:"column:category_id"`
	Category        *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Image           string          `gorm:"column:image;not null"`
	Description     string          `gorm:"column:description;type:text;not null"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(7,2);not null;default:0"`
	Stock           int             `gorm:"column:stock;not null;default:0"`
	Color           *string         `gorm:"column:color;size:75"`
	Size            *string         `gorm:"column:size;size:50"`
	Rating          int             `gorm:"column:rating;not null;default:0"`
	Popular         *bool           `gorm:"column:popular;default:false"`
	Shop            *enums.Shop     `gorm:"column:shop;size:50;default:'Luku Store.nl'"`
	Digital         *bool           `gorm:"column:digital;default:false"`
	Slug            *string         `gorm:"column:slug"`
}

// BeforeSave recomputes the slug from the current name on every save.
func (p *Photo) BeforeSave(tx *gorm.DB) error {
	if p.Name != nil {
		p.Slug = slugOrNil(*p.Name)
	} else {
		p.Slug = nil
	}
	return nil
}

// DisplayName never fails to produce a label: the name when present, the
// type as a fallback, and a fixed marker when neither is set.
func (p *Photo) DisplayName() string {
	if p == nil {
		return "(unnamed photo)"
	}
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	if p.Type != nil && *p.Type != "" {
		return fmt.Sprintf("Type: %s", *p.Type)
	}
	return "(unnamed photo)"
}
