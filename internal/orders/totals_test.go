package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
)

func physical(price string, qty int) models.OrderItem {
	digital := false
	return models.OrderItem{
		Product:  &models.Product{Price: decimal.RequireFromString(price), Digital: &digital},
		Quantity: qty,
	}
}

func digitalItem(price string, qty int) models.OrderItem {
	digital := true
	return models.OrderItem{
		Product:  &models.Product{Price: decimal.RequireFromString(price), Digital: &digital},
		Quantity: qty,
	}
}

func TestLineTotal(t *testing.T) {
	total, err := LineTotal(physical("19.99", 3))
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.RequireFromString("59.97")))
}

func TestLineTotalStaleProduct(t *testing.T) {
	_, err := LineTotal(models.OrderItem{ID: 7, Quantity: 1})
	require.Error(t, err)
	require.True(t, IsStaleLineItem(err))
}

func TestCartTotalSumsLines(t *testing.T) {
	items := []models.OrderItem{physical("10.00", 2), digitalItem("5.50", 1)}
	total, err := CartTotal(items)
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.RequireFromString("25.50")))
}

func TestCartTotalFailsOnStaleLine(t *testing.T) {
	items := []models.OrderItem{physical("10.00", 1), {ID: 3, Quantity: 2}}
	_, err := CartTotal(items)
	require.Error(t, err)
	require.True(t, IsStaleLineItem(err))
}

func TestCartItemCountIgnoresProducts(t *testing.T) {
	items := []models.OrderItem{physical("10.00", 2), {Quantity: 5}}
	require.Equal(t, 7, CartItemCount(items))
}

func TestRequiresShipping(t *testing.T) {
	shipping, err := RequiresShipping([]models.OrderItem{digitalItem("1.00", 1), physical("2.00", 1)})
	require.NoError(t, err)
	require.True(t, shipping)

	shipping, err = RequiresShipping([]models.OrderItem{digitalItem("1.00", 1)})
	require.NoError(t, err)
	require.False(t, shipping)
}

func TestRequiresShippingZeroLines(t *testing.T) {
	shipping, err := RequiresShipping(nil)
	require.NoError(t, err)
	require.False(t, shipping)
}

func TestRequiresShippingStaleLine(t *testing.T) {
	_, err := RequiresShipping([]models.OrderItem{{ID: 9}})
	require.Error(t, err)
	require.True(t, IsStaleLineItem(err))
}

// The flag on a missing product defaults to physical goods, so a product
// row with digital = NULL still requires shipping.
func TestRequiresShippingNullDigitalFlag(t *testing.T) {
	item := models.OrderItem{Product: &models.Product{Price: decimal.Zero}, Quantity: 1}
	shipping, err := RequiresShipping([]models.OrderItem{item})
	require.NoError(t, err)
	require.True(t, shipping)
}
