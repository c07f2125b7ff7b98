package postgres

import (
	"context"
	"testing"
	"time"

	"easyshop/internal/domain/entity"
	"easyshop/internal/domain/repository"
	"easyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testOrder(userID int64) *entity.Order {
	return &entity.Order{
		UserID:         userID,
		Date:           time.Now().UTC(),
		Address:        "1 Main St",
		City:           "Springfield",
		State:          "IL",
		Zip:            "62701",
		ShippingAmount: decimal.Zero,
	}
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.OrderModel{}).Count(&count).Error)

	return count
}

func TestTransactionManager_CommitOnSuccess(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	order := testOrder(1)

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.OrderRepo().CreateOrder(ctx, order)
	})

	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, int64(1), countOrders(t, db))
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	lineErr := errors.New("line insert failed")

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		order := testOrder(1)
		if err := f.OrderRepo().CreateOrder(ctx, order); err != nil {
			return err
		}
		require.NotZero(t, order.ID)

		return lineErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, lineErr)
	// The order header written inside the failed transaction is gone.
	assert.Equal(t, int64(0), countOrders(t, db))
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.OrderRepo().CreateOrder(ctx, testOrder(1)); err != nil {
				return err
			}
			panic("callback exploded")
		})
	})

	assert.Equal(t, int64(0), countOrders(t, db))
}
