package models

import "time"

// Order is a cart while incomplete and a placed order once complete.
// Its totals, item count and shipping flag are derived on read from the
// associated OrderItem rows and never stored (internal/orders).
type Order struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    *uint     `gorm:"column:customer_id"`
	Customer      *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	DateOrdered   time.Time `gorm:"column:date_ordered;autoCreateTime"`
	Complete      *bool     `gorm:"column:complete;default:false"`
	TransactionID *string   `gorm:"column:transaction_id;size:200"`
}

// IsComplete treats a missing flag as an open cart.
func (o *Order) IsComplete() bool {
	return o.Complete != nil && *o.Complete
}
