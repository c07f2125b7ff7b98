package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"easyshop/config"
	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	mockRepo "easyshop/internal/mocks/repository"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestCheckoutService(t *testing.T, shippingAmount string) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{ShippingAmount: shippingAmount},
	}

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProfileRepo: profileRepo,
		Config:      cfg,
		Logger:      logger,
	})

	return checkoutServiceFixtures{
		service:     service,
		txManager:   txManager,
		cartRepo:    cartRepo,
		profileRepo: profileRepo,
	}
}

func cartItem(productID int64, price string, quantity int) *entity.CartItem {
	return &entity.CartItem{
		Product: &entity.Product{
			ID:    productID,
			Price: decimal.RequireFromString(price),
		},
		Quantity:        quantity,
		DiscountPercent: decimal.Zero,
	}
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t, "0")
	ctx := context.Background()

	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(entity.NewShoppingCart(), nil)

	output, err := fx.service.Checkout(ctx, 1)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	// Precondition failure: the transaction never opened.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_MissingProfile(t *testing.T) {
	fx := createTestCheckoutService(t, "0")
	ctx := context.Background()

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "9.99", 2))

	fx.cartRepo.EXPECT().GetCart(ctx, int64(1)).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, int64(1)).Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.Checkout(ctx, 1)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProfileMissing)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_Success(t *testing.T) {
	fx := createTestCheckoutService(t, "0")
	ctx := context.Background()
	userID := int64(42)

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "9.99", 2))
	cart.Add(cartItem(2, "5.00", 1))

	profile := &entity.Profile{
		UserID:  userID,
		Address: "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62701",
	}

	fx.cartRepo.EXPECT().GetCart(ctx, userID).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 777
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				CreateOrderLineItems(ctx, mock.AnythingOfType("[]*entity.OrderLineItem")).
				Run(func(ctx context.Context, items []*entity.OrderLineItem) {
					require.Len(t, items, 2)
					// Ordered by product id, prices snapshotted from the cart.
					assert.Equal(t, int64(777), items[0].OrderID)
					assert.Equal(t, int64(1), items[0].ProductID)
					assert.Equal(t, 2, items[0].Quantity)
					assert.True(t, items[0].SalesPrice.Equal(decimal.RequireFromString("9.99")))
					assert.True(t, items[0].Discount.Equal(decimal.Zero))
					assert.Equal(t, int64(2), items[1].ProductID)
					assert.Equal(t, 1, items[1].Quantity)
					assert.True(t, items[1].SalesPrice.Equal(decimal.RequireFromString("5.00")))
				}).
				Return(nil)

			mockCartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Checkout(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(777), output.OrderID)
	assert.Equal(t, "1 Main St", output.Order.Address)
	assert.Equal(t, "Springfield", output.Order.City)
	assert.Len(t, output.Order.Items, 2)
	assert.True(t, output.Order.ShippingAmount.Equal(decimal.Zero))
}

func TestCheckoutService_ShippingAmountFromConfig(t *testing.T) {
	fx := createTestCheckoutService(t, "4.95")
	ctx := context.Background()
	userID := int64(7)

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "10.00", 1))

	fx.cartRepo.EXPECT().GetCart(ctx, userID).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.True(t, order.ShippingAmount.Equal(decimal.RequireFromString("4.95")))
					order.ID = 1
				}).
				Return(nil)
			mockOrderRepo.EXPECT().CreateOrderLineItems(ctx, mock.Anything).Return(nil)
			mockCartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Checkout(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Order.ShippingAmount.Equal(decimal.RequireFromString("4.95")))
}

func TestCheckoutService_LineInsertFailureRollsBack(t *testing.T) {
	fx := createTestCheckoutService(t, "0")
	ctx := context.Background()
	userID := int64(9)

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "9.99", 1))

	fx.cartRepo.EXPECT().GetCart(ctx, userID).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)

	insertErr := errors.New("line insert failed")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().CartRepo().Return(mockRepo.NewMockCartRepository(t))

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 55
				}).
				Return(nil)
			mockOrderRepo.EXPECT().
				CreateOrderLineItems(ctx, mock.Anything).
				Return(insertErr)

			// The transaction manager rolls back when fn errors and
			// propagates the failure.
			err := fn(mockFactory)
			require.Error(t, err)

			return err
		})

	output, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, insertErr)
}

func TestCheckoutService_NoGeneratedOrderID(t *testing.T) {
	fx := createTestCheckoutService(t, "0")
	ctx := context.Background()
	userID := int64(3)

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "1.00", 1))

	fx.cartRepo.EXPECT().GetCart(ctx, userID).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().CartRepo().Return(mockRepo.NewMockCartRepository(t))

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Return(repository.ErrOrderInsertFailed)

			return fn(mockFactory)
		})

	output, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderInsertFailed)
}

func TestCheckoutService_InvalidShippingConfigDefaultsToZero(t *testing.T) {
	fx := createTestCheckoutService(t, "not-a-number")
	ctx := context.Background()
	userID := int64(5)

	cart := entity.NewShoppingCart()
	cart.Add(cartItem(1, "2.50", 2))

	fx.cartRepo.EXPECT().GetCart(ctx, userID).Return(cart, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.True(t, order.ShippingAmount.Equal(decimal.Zero))
					order.ID = 2
				}).
				Return(nil)
			mockOrderRepo.EXPECT().CreateOrderLineItems(ctx, mock.Anything).Return(nil)
			mockCartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	_, err := fx.service.Checkout(ctx, userID)

	require.NoError(t, err)
}
