package models

// OrderItem is a single cart line. Both references detach on delete; a
// line whose product has been detached is "stale" and order computations
// over it fail with a defined error instead of dereferencing nil.
type OrderItem struct {
	ID        uint     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID *uint    `gorm:"column:product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	OrderID   *uint    `gorm:"column:order_id"`
	Order     *Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
	Quantity  int      `gorm:"column:quantity;not null;default:0"`
}
