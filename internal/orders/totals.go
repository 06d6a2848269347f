package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
)

// Derived order values are computed from the line items on every read and
// never stored. A line whose product has been detached (SET NULL on
// product deletion) is stale: computations over it fail with a defined
// error instead of dereferencing nil or silently skipping the line.

func staleLineItem(itemID uint) error {
	return pkgerrors.New(pkgerrors.CodeStaleLineItem, "line item references a deleted product").
		WithDetails(map[string]any{"order_item_id": itemID})
}

// IsStaleLineItem reports whether the error marks a stale cart line.
func IsStaleLineItem(err error) bool {
	typed := pkgerrors.As(err)
	return typed != nil && typed.Code() == pkgerrors.CodeStaleLineItem
}

// LineTotal returns price x quantity for a single line. The item's Product
// association must be loaded.
func LineTotal(item models.OrderItem) (decimal.Decimal, error) {
	if item.Product == nil {
		return decimal.Zero, staleLineItem(item.ID)
	}
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))), nil
}

// CartTotal sums the line totals across all items.
func CartTotal(items []models.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		line, err := LineTotal(item)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(line)
	}
	return total, nil
}

// CartItemCount sums the quantities across all items. Quantity lives on
// the line itself, so stale lines still count.
func CartItemCount(items []models.OrderItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// RequiresShipping is true iff at least one line's product is physical.
// An order with zero lines ships nothing.
func RequiresShipping(items []models.OrderItem) (bool, error) {
	for _, item := range items {
		if item.Product == nil {
			return false, staleLineItem(item.ID)
		}
		if !item.Product.IsDigital() {
			return true, nil
		}
	}
	return false, nil
}

// LineDescription labels a line for logs and error payloads.
func LineDescription(item models.OrderItem) string {
	if item.Product == nil {
		return fmt.Sprintf("line %d (stale)", item.ID)
	}
	if item.Product.Name != nil {
		return fmt.Sprintf("line %d (%s x%d)", item.ID, *item.Product.Name, item.Quantity)
	}
	return fmt.Sprintf("line %d (product %d x%d)", item.ID, item.Product.ID, item.Quantity)
}
