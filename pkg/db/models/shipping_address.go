package models

import "github.com/lukustore/lukustore-backend/pkg/enums"

// ShippingAddress records where an order ships. DateAdded has always been
// a plain string column; kept as-is to preserve the stored shape.
type ShippingAddress struct {
	ID         uint                `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID *uint               `gorm:"column:customer_id"`
	Customer   *Customer           `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	OrderID    *uint               `gorm:"column:order_id"`
	Order      *Order              `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
	Address    *string             `gorm:"column:address;size:200"`
	City       *string             `gorm:"column:city;size:200"`
	State      *string             `gorm:"column:state;size:200"`
	Zipcode    *string             `gorm:"column:zipcode;size:200"`
	DateAdded  *string             `gorm:"column:date_added;size:200"`
	Label      *enums.AddressLabel `gorm:"column:label;size:15;default:'Home'"`
}
