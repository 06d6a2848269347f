package enums

import "fmt"

// Shop identifies which storefront a catalog item belongs to.
type Shop string

const (
	ShopLukuStore    Shop = "Luku Store.nl"
	ShopAkibaStudios Shop = "Akiba Studios"
)

var validShops = []Shop{
	ShopLukuStore,
	ShopAkibaStudios,
}

// String implements fmt.Stringer.
func (s Shop) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Shop.
func (s Shop) IsValid() bool {
	for _, candidate := range validShops {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShop converts raw input into a Shop.
func ParseShop(value string) (Shop, error) {
	for _, candidate := range validShops {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shop %q", value)
}
