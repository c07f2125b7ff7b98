package repository

import (
	"context"

	"easyshop/internal/domain/entity"
	"easyshop/internal/errors"
)

// ErrOrderInsertFailed is returned when an order insert produced no generated id.
var ErrOrderInsertFailed = errors.New("order insert produced no id")

// OrderRepository defines the interface for order persistence. Orders and
// their line items are created once by checkout and never mutated afterwards.
type OrderRepository interface {
	// CreateOrder persists the order header and fills in the storage-assigned
	// id. Returns ErrOrderInsertFailed if storage assigned no id.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderLineItems persists the order's line items.
	CreateOrderLineItems(ctx context.Context, items []*entity.OrderLineItem) error
}
