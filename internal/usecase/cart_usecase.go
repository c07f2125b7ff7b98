package usecase

import (
	"context"

	"easyshop/internal/domain/entity"
)

// CartUsecase defines the interface for the per-user shopping cart. Every
// mutation returns the freshly materialized cart, the way the storefront
// client expects it.
type CartUsecase interface {
	// GetCart materializes the user's cart. Never nil; empty is a valid value.
	GetCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error)

	// AddProductToCart adds one unit of the product to the cart, creating the
	// line or incrementing it atomically, and returns the updated cart.
	AddProductToCart(ctx context.Context, userID, productID int64) (*entity.ShoppingCart, error)

	// UpdateCartLine sets a line's quantity directly. Quantity must be > 0;
	// that is validated here, before the store is touched.
	UpdateCartLine(ctx context.Context, userID, productID int64, quantity int) (*entity.ShoppingCart, error)

	// ClearCart removes every line from the user's cart. Idempotent.
	ClearCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error)
}
