package postgres

import (
	"context"
	"testing"

	"easyshop/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GetCart_ExcludesVanishedProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := &model.ProductModel{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("9.99"),
		CategoryID: 1,
	}
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, db.Create(&model.CartItemModel{UserID: 1, ProductID: product.ProductID, Quantity: 2}).Error)
	// Cart row whose product row no longer exists.
	require.NoError(t, db.Create(&model.CartItemModel{UserID: 1, ProductID: 9999, Quantity: 1}).Error)

	cart, err := repo.GetCart(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)

	line := cart.Items[product.ProductID]
	require.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.Product.Price.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, line.DiscountPercent.Equal(decimal.Zero))
}

func TestCartRepository_GetCart_EmptyCartIsNonNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetCart(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestCartRepository_GetCart_OnlyOwnLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := &model.ProductModel{
		Name:       "Keyboard",
		Price:      decimal.RequireFromString("49.99"),
		CategoryID: 1,
	}
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, db.Create(&model.CartItemModel{UserID: 1, ProductID: product.ProductID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&model.CartItemModel{UserID: 2, ProductID: product.ProductID, Quantity: 3}).Error)

	cart, err := repo.GetCart(ctx, 2)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[product.ProductID].Quantity)
}

func TestCartRepository_ClearCart_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := &model.ProductModel{
		Name:       "Mouse",
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: 1,
	}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&model.CartItemModel{UserID: 1, ProductID: product.ProductID, Quantity: 1}).Error)

	require.NoError(t, repo.ClearCart(ctx, 1))
	// Clearing an already-empty cart succeeds.
	require.NoError(t, repo.ClearCart(ctx, 1))

	cart, err := repo.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
