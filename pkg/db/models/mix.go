package models

import "time"

// Mix is a published DJ mix with engagement counters. The counters start
// at zero and are bumped atomically by the mixes service.
type Mix struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Title           string    `gorm:"column:title;size:100;not null"`
	MixArtist       string    `gorm:"column:mix_artist;size:100;not null"`
	FeaturedArtists string    `gorm:"column:featured_artists;type:text;not null"`
	Image           *string   `gorm:"column:image"`
	Genre           string    `gorm:"column:genre;size:100;not null"`
	ReleaseDate     time.Time `gorm:"column:release_date;type:date;not null"`
	File            *string   `gorm:"column:file"`
	PlayCount       uint      `gorm:"column:play_count;not null;default:0"`
	FavoriteCount   uint      `gorm:"column:favorite_count;not null;default:0"`
	DownloadCount   uint      `gorm:"column:download_count;not null;default:0"`
	StreamLink      *string   `gorm:"column:stream_link;type:text"`
}

func (Mix) TableName() string {
	return "mixes"
}
