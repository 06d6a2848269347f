package models

// Video is a titled video file reference.
type Video struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string `gorm:"column:title;size:100;not null"`
	VideoFile string `gorm:"column:video_file;not null"`
}
