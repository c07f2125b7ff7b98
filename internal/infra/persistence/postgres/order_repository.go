package postgres

import (
	"context"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface.
// It is only ever used inside the checkout transaction.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order header and fills in the storage-assigned id.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		UserID:         order.UserID,
		Date:           order.Date,
		Address:        order.Address,
		City:           order.City,
		State:          order.State,
		Zip:            order.Zip,
		ShippingAmount: order.ShippingAmount,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// A write that should produce a generated identifier but did not is an
	// integrity failure, not a plain storage error.
	if orderM.OrderID == 0 {
		return repository.ErrOrderInsertFailed
	}

	order.ID = orderM.OrderID

	return nil
}

// CreateOrderLineItems persists the order's line items in one batch insert.
func (repo *orderRepository) CreateOrderLineItems(ctx context.Context, items []*entity.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderLineItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, &model.OrderLineItemModel{
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			SalesPrice: item.SalesPrice,
			Quantity:   item.Quantity,
			Discount:   item.Discount,
		})
	}

	if err := repo.db.WithContext(ctx).Create(itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line items")
	}

	return nil
}
