// Package models declares the persistent schema: catalog, orders,
// customers, blog and site content. The physical tables are created by the
// SQL migrations; All exists for dev automigrate and test fixtures.
package models

// All returns every model in FK-dependency order.
func All() []any {
	return []any{
		&User{},
		&Customer{},
		&Category{},
		&Brand{},
		&Photo{},
		&Product{},
		&Order{},
		&OrderItem{},
		&ShippingAddress{},
		&Newsletter{},
		&Blog{},
		&AboutUs{},
		&Help{},
		&HomePage{},
		&ContactForm{},
		&Mix{},
		&Video{},
		&MediaDefault{},
	}
}
