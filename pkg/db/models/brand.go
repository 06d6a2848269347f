package models

// Brand labels products; deleting a brand detaches its products.
type Brand struct {
	ID       uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name     *string `gorm:"column:name;size:200"`
	Keywords *string `gorm:"column:keywords;type:text"`
	Image    *string `gorm:"column:image"`
}
