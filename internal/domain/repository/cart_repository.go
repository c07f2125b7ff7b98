package repository

import (
	"context"

	"easyshop/internal/domain/entity"
)

// CartRepository defines the interface for shopping cart persistence.
//
// The cart is stored as (user_id, product_id, quantity) rows and materialized
// on every read by joining against the product catalog, so every returned line
// carries the current authoritative price.
type CartRepository interface {
	// GetCart materializes the user's cart. The result is never nil; an empty
	// cart is a valid value. Cart rows whose product no longer exists are
	// excluded from the materialized cart.
	GetCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error)

	// AddProduct inserts a cart line with quantity 1, or increments the
	// existing line's quantity by 1, as a single atomic upsert. Two concurrent
	// calls for the same (user, product) never produce two rows or lose an
	// increment.
	AddProduct(ctx context.Context, userID, productID int64) error

	// UpdateQuantity sets the line's quantity directly. Quantity > 0 is
	// enforced by the caller. A missing line is a silent no-op.
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error

	// ClearCart deletes all cart rows for the user. Idempotent.
	ClearCart(ctx context.Context, userID int64) error
}
