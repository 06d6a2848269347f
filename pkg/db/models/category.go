package models

// Category groups catalog items; referenced by Photo and Product with
// SET NULL semantics so deleting a category never cascades.
type Category struct {
	ID   uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name *string `gorm:"column:name;size:100"`
	Icon *string `gorm:"column:icon;size:50"`
}
