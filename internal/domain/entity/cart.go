package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line in a shopping cart. DiscountPercent is
// per-line state carried through to the order line; it is never shared across
// lines or across carts.
type CartItem struct {
	Product         *Product        `json:"product"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// LineTotal returns price × quantity × (1 − discountPercent).
// This is the only place the per-line amount is derived.
func (item *CartItem) LineTotal() decimal.Decimal {
	if item.Product == nil {
		return decimal.Zero
	}

	gross := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

	return gross.Mul(decimal.NewFromInt(1).Sub(item.DiscountPercent))
}

// ShoppingCart is the materialized cart for one user, keyed by product id.
// It is rebuilt from storage on every read, never cached.
type ShoppingCart struct {
	Items map[int64]*CartItem `json:"items"`
}

// NewShoppingCart returns an empty, non-nil cart.
func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{Items: make(map[int64]*CartItem)}
}

// Add puts an item into the cart, keyed by its product id. Items without a
// product are ignored; the store never materializes such a line.
func (cart *ShoppingCart) Add(item *CartItem) {
	if item == nil || item.Product == nil {
		return
	}
	cart.Items[item.Product.ID] = item
}

// IsEmpty reports whether the cart has no lines.
func (cart *ShoppingCart) IsEmpty() bool {
	return len(cart.Items) == 0
}

// Lines returns the cart items ordered by product id, for deterministic
// iteration during checkout and in responses.
func (cart *ShoppingCart) Lines() []*CartItem {
	lines := make([]*CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, item)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.ID < lines[j].Product.ID
	})

	return lines
}

// Total returns the sum of all line totals.
func (cart *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}
