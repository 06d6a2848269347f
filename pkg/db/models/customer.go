package models

// Customer is the commerce-side profile provisioned for every new user
// identity. Name and email are denormalized copies taken at creation time.
// The user link cascades on delete; every other reference to Customer in
// the schema detaches instead.
type Customer struct {
	ID     uint    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID *uint   `gorm:"column:user_id;uniqueIndex"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name   *string `gorm:"column:name;size:200"`
	Email  *string `gorm:"column:email;size:200"`
	Image  *string `gorm:"column:image"`
}
