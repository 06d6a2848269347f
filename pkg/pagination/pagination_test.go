package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-3); got != DefaultLimit {
		t.Fatalf("expected default limit for negatives, got %d", got)
	}
	if got := NormalizeLimit(500); got != MaxLimit {
		t.Fatalf("expected cap at max, got %d", got)
	}
	if got := NormalizeLimit(12); got != 12 {
		t.Fatalf("expected pass-through, got %d", got)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Limit: 10, Page: 3}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := (Params{Limit: 10}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for missing page, got %d", got)
	}
}
