package models

// HomePage is the hero content block. Application-level singleton: the
// service reads the most recent row.
type HomePage struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Quote       *string `gorm:"column:quote;type:text"`
	Name        *string `gorm:"column:name;size:200"`
	QuoteAuthor *string `gorm:"column:quote_author;size:200"`
	Image       *string `gorm:"column:image"`
	Button      *string `gorm:"column:button;size:10"`
}
