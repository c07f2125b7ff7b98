package impl

import (
	"context"
	"log/slog"

	deliverycontext "easyshop/internal/delivery/context"
	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart materializes the user's cart. Never nil.
func (srv *cartService) GetCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error) {
	cart, err := srv.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddProductToCart adds one unit of the product to the cart and returns the
// updated cart. The product must exist; the store's atomic upsert handles
// concurrent adds of the same line.
func (srv *cartService) AddProductToCart(ctx context.Context, userID, productID int64) (*entity.ShoppingCart, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to verify product before adding to cart")
	}

	if err := srv.cartRepo.AddProduct(ctx, userID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to add product to cart")
	}

	srv.log(ctx).Debug("Product added to cart", slog.Int64("userID", userID), slog.Int64("productID", productID))

	return srv.GetCart(ctx, userID)
}

// UpdateCartLine sets a line's quantity directly. Quantity validation lives
// here so the store never sees a non-positive quantity.
func (srv *cartService) UpdateCartLine(ctx context.Context, userID, productID int64, quantity int) (*entity.ShoppingCart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be greater than zero")
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to verify product before updating cart")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	return srv.GetCart(ctx, userID)
}

// ClearCart removes every line from the user's cart. Idempotent.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error) {
	if err := srv.cartRepo.ClearCart(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cart cleared", slog.Int64("userID", userID))

	return srv.GetCart(ctx, userID)
}
