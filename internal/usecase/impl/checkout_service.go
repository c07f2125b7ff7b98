package impl

import (
	"context"
	"log/slog"
	"time"

	"easyshop/config"
	deliverycontext "easyshop/internal/delivery/context"
	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. It is the only
// service with a multi-step failure/rollback contract: order header, order
// lines, and cart clear commit together or not at all.
type checkoutService struct {
	txManager      repository.TransactionManager
	cartRepo       repository.CartRepository
	profileRepo    repository.ProfileRepository
	shippingAmount decimal.Decimal
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService. The flat
// shipping amount comes from configuration and defaults to zero when unset
// or unparsable.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	shippingAmount := decimal.Zero
	if params.Config != nil && params.Config.Checkout != nil && params.Config.Checkout.ShippingAmount != "" {
		parsed, err := decimal.NewFromString(params.Config.Checkout.ShippingAmount)
		if err != nil {
			params.Logger.Warn("Invalid checkout.shippingAmount, using zero", slog.String("value", params.Config.Checkout.ShippingAmount), slog.Any("error", err))
		} else {
			shippingAmount = parsed
		}
	}

	return &checkoutService{
		txManager:      params.TxManager,
		cartRepo:       params.CartRepo,
		profileRepo:    params.ProfileRepo,
		shippingAmount: shippingAmount,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the user's cart into a durable order.
//
// The empty-cart and missing-profile checks run before the transaction opens;
// those failures leave no side effects. Everything after that runs inside a
// single transaction: order header, one line per cart line, cart clear. A
// failure at any step rolls back all of it.
func (srv *checkoutService) Checkout(ctx context.Context, userID int64) (*usecase.CheckoutOutput, error) {
	cart, err := srv.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileMissing
		}

		return nil, errors.Wrap(err, "failed to load profile for checkout")
	}

	order := &entity.Order{
		UserID:         userID,
		Date:           time.Now().UTC(),
		Address:        profile.Address,
		City:           profile.City,
		State:          profile.State,
		Zip:            profile.Zip,
		ShippingAmount: srv.shippingAmount,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		cartRepo := repoFactory.CartRepo()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			if errors.Is(err, repository.ErrOrderInsertFailed) {
				return domainerrors.ErrOrderInsertFailed.WrapMessage("order insert produced no id")
			}

			return errors.Wrap(err, "failed to create order header")
		}

		// One line per cart line, prices and discounts snapshotted from the
		// materialized cart, in product-id order.
		lines := make([]*entity.OrderLineItem, 0, len(cart.Items))
		for _, item := range cart.Lines() {
			lines = append(lines, &entity.OrderLineItem{
				OrderID:    order.ID,
				ProductID:  item.Product.ID,
				SalesPrice: item.Product.Price,
				Quantity:   item.Quantity,
				Discount:   item.DiscountPercent,
			})
		}
		if err := orderRepo.CreateOrderLineItems(ctx, lines); err != nil {
			return errors.Wrap(err, "failed to create order line items")
		}
		order.Items = lines

		if err := cartRepo.ClearCart(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after order creation")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Checkout transaction failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Int64("userID", userID),
		slog.Int64("orderID", order.ID),
		slog.Int("lines", len(order.Items)),
		slog.String("total", cart.Total().Add(srv.shippingAmount).String()),
	)

	return &usecase.CheckoutOutput{OrderID: order.ID, Order: order}, nil
}
