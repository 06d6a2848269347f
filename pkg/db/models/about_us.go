package models

// AboutUs is a team member profile shown on the about page.
type AboutUs struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Summary   *string `gorm:"column:summary;size:700"`
	Name      *string `gorm:"column:name;size:100"`
	Role      *string `gorm:"column:role;size:100"`
	Instagram *string `gorm:"column:instagram;size:50"`
	Twitter   *string `gorm:"column:twitter;size:50"`
	Bio       *string `gorm:"column:bio;type:text"`
	Image     string  `gorm:"column:image;not null"`
}

// TableName keeps the table singular-free name the site has always used.
func (AboutUs) TableName() string {
	return "about_us"
}
