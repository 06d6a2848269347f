package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/slug"
)

// Blog is a published article. The slug is recomputed from the title on
// every save, never preserved from a previous one.
type Blog struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string    `gorm:"column:title;size:200;not null"`
	Summary    string    `gorm:"column:summary;size:500;not null"`
	Content    string    `gorm:"column:content;type:text;not null"`
	Author     string    `gorm:"column:author;size:200;not null"`
	Keywords   *string   `gorm:"column:keywords;type:text"`
	Image      *string   `gorm:"column:image"`
	YouTube    *string   `gorm:"column:youtube;type:text"`
	Slug       *string   `gorm:"column:slug;uniqueIndex"`
	PubDate    time.Time `gorm:"column:pub_date;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
	ContentOne *string   `gorm:"column:content_one;type:text"`
	ContentTwo *string   `gorm:"column:content_two;type:text"`
}

// BeforeSave derives the slug from the current title, overwriting any
// existing value. An empty title stores NULL so the unique index cannot
// collide on empty slugs.
func (b *Blog) BeforeSave(tx *gorm.DB) error {
	b.Slug = slugOrNil(b.Title)
	return nil
}

func slugOrNil(source string) *string {
	if s := slug.Make(source); s != "" {
		return &s
	}
	return nil
}
