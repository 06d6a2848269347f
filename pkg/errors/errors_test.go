package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	if meta := MetadataFor(CodeStaleLineItem); meta.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for stale line item, got %d", meta.HTTPStatus)
	}
	if meta := MetadataFor(Code("NOPE")); meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown code should map to internal, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row gone")
	err := Wrap(CodeStaleLineItem, cause, "line item detached")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if err.Code() != CodeStaleLineItem {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsThroughChains(t *testing.T) {
	typed := New(CodeNotFound, "missing")
	wrapped := fmt.Errorf("outer: %w", typed)

	got := As(wrapped)
	if got == nil || got.Code() != CodeNotFound {
		t.Fatalf("expected typed error through chain, got %v", got)
	}

	if As(errors.New("plain")) != nil {
		t.Fatal("plain errors should not match")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeConflict, errors.New("duplicate slug"), "slug taken")
	d := Dump(err)

	if d.Code != CodeConflict {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
