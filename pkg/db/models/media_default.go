package models

// MediaDefault maps an entity kind to its placeholder asset path so rows
// remain renderable before any media is uploaded. Replaces scattering
// placeholder literals across the schema; seeded by migration.
type MediaDefault struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Entity string `gorm:"column:entity;size:50;not null;uniqueIndex"`
	Path   string `gorm:"column:path;size:200;not null"`
}
