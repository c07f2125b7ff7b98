package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the durable record produced by checkout. The address fields are a
// snapshot copied from the profile at checkout time, not a live reference.
// Orders are immutable once created.
type Order struct {
	ID             int64            `json:"orderId"`
	UserID         int64            `json:"userId"`
	Date           time.Time        `json:"date"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Zip            string           `json:"zip"`
	ShippingAmount decimal.Decimal  `json:"shippingAmount"`
	Items          []*OrderLineItem `json:"items,omitempty"`
}

// OrderLineItem is one line of an order. SalesPrice is the product price
// snapshot taken at checkout time; Discount is the line's discount percent
// carried over from the cart.
type OrderLineItem struct {
	OrderID    int64           `json:"orderId"`
	ProductID  int64           `json:"productId"`
	SalesPrice decimal.Decimal `json:"salesPrice"`
	Quantity   int             `json:"quantity"`
	Discount   decimal.Decimal `json:"discount"`
}
