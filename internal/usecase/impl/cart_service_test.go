package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	mockRepo "easyshop/internal/mocks/repository"
	"easyshop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCartService(cartRepo, productRepo, logger)

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_EmptyIsValid(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(entity.NewShoppingCart(), nil)

	cart, err := fx.service.GetCart(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddProduct_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 10, Price: decimal.RequireFromString("9.99")}
	updated := entity.NewShoppingCart()
	updated.Add(&entity.CartItem{Product: product, Quantity: 1, DiscountPercent: decimal.Zero})

	fx.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)
	fx.cartRepo.EXPECT().AddProduct(ctx, int64(1), int64(10)).Return(nil)
	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(updated, nil)

	cart, err := fx.service.AddProductToCart(ctx, 1, 10)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[10].Quantity)
}

func TestCartService_AddProduct_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	cart, err := fx.service.AddProductToCart(ctx, 1, 99)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.cartRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateCartLine_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	for _, quantity := range []int{0, -1} {
		cart, err := fx.service.UpdateCartLine(ctx, 1, 10, quantity)

		require.Error(t, err)
		assert.Nil(t, cart)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	// The store is never touched for invalid quantities.
	fx.cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateCartLine_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 10, Price: decimal.RequireFromString("9.99")}
	updated := entity.NewShoppingCart()
	updated.Add(&entity.CartItem{Product: product, Quantity: 5, DiscountPercent: decimal.Zero})

	fx.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(product, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, int64(1), int64(10), 5).Return(nil)
	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(updated, nil)

	cart, err := fx.service.UpdateCartLine(ctx, 1, 10, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[10].Quantity)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().ClearCart(ctx, int64(1)).Return(nil)
	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(entity.NewShoppingCart(), nil)

	cart, err := fx.service.ClearCart(ctx, 1)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
