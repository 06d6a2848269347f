package enums

import "testing"

func TestParseShop(t *testing.T) {
	shop, err := ParseShop("Akiba Studios")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shop != ShopAkibaStudios {
		t.Fatalf("unexpected shop %q", shop)
	}

	if _, err := ParseShop("unknown"); err == nil {
		t.Fatal("expected error for unknown shop")
	}
}

func TestAddressLabelIsValid(t *testing.T) {
	if !AddressLabelOffice.IsValid() {
		t.Fatal("Office should be valid")
	}
	if AddressLabel("Warehouse").IsValid() {
		t.Fatal("Warehouse should not be valid")
	}
}
