package models

// Newsletter is a subscription row, optionally linked to a customer.
type Newsletter struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID *uint     `gorm:"column:customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Email      string    `gorm:"column:email;size:254;not null"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}
