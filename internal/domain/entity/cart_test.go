package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(productID int64, price string, quantity int) *CartItem {
	return &CartItem{
		Product: &Product{
			ID:    productID,
			Name:  "product",
			Price: decimal.RequireFromString(price),
		},
		Quantity:        quantity,
		DiscountPercent: decimal.Zero,
	}
}

func TestCartItem_LineTotal(t *testing.T) {
	item := newTestItem(1, "9.99", 2)

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("19.98")))
}

func TestCartItem_LineTotal_WithDiscount(t *testing.T) {
	item := newTestItem(1, "100", 2)
	item.DiscountPercent = decimal.RequireFromString("0.25")

	// 100 × 2 × (1 − 0.25)
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("150")))
}

func TestCartItem_LineTotal_NilProduct(t *testing.T) {
	item := &CartItem{Quantity: 3}

	assert.True(t, item.LineTotal().Equal(decimal.Zero))
}

func TestShoppingCart_Empty(t *testing.T) {
	cart := NewShoppingCart()

	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
	assert.True(t, cart.Total().Equal(decimal.Zero))
}

func TestShoppingCart_AddKeysByProductID(t *testing.T) {
	cart := NewShoppingCart()
	cart.Add(newTestItem(7, "5.00", 1))
	cart.Add(newTestItem(7, "5.00", 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[7].Quantity)
}

func TestShoppingCart_AddIgnoresNilProduct(t *testing.T) {
	cart := NewShoppingCart()
	cart.Add(nil)
	cart.Add(&CartItem{Quantity: 1})

	assert.True(t, cart.IsEmpty())
}

func TestShoppingCart_LinesOrderedByProductID(t *testing.T) {
	cart := NewShoppingCart()
	cart.Add(newTestItem(30, "1.00", 1))
	cart.Add(newTestItem(10, "1.00", 1))
	cart.Add(newTestItem(20, "1.00", 1))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(10), lines[0].Product.ID)
	assert.Equal(t, int64(20), lines[1].Product.ID)
	assert.Equal(t, int64(30), lines[2].Product.ID)
}

func TestShoppingCart_Total(t *testing.T) {
	cart := NewShoppingCart()
	cart.Add(newTestItem(1, "9.99", 2))
	cart.Add(newTestItem(2, "5.00", 1))

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("24.98")))
}
