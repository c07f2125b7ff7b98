package usecase

import (
	"context"

	"easyshop/internal/domain/entity"
)

// CheckoutOutput returns the durable order produced by a successful checkout.
type CheckoutOutput struct {
	OrderID int64         `json:"orderId"`
	Order   *entity.Order `json:"order"`
}

// CheckoutUsecase defines the interface for converting a user's cart into an
// order. Checkout is not idempotent: calling it twice produces two orders, so
// retries are the caller's responsibility.
type CheckoutUsecase interface {
	// Checkout reads the cart and the shipping profile, then creates the
	// order header, its line items, and clears the cart as one atomic unit.
	// Fails with ErrCartEmpty or ErrProfileMissing before any write happens.
	Checkout(ctx context.Context, userID int64) (*CheckoutOutput, error)
}
