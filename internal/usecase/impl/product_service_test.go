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

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProductService(productRepo, logger), productRepo
}

func TestProductService_SearchProducts_PassesFilterThrough(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	categoryID := int64(1)
	minPrice := decimal.RequireFromString("10")
	maxPrice := decimal.RequireFromString("100")
	subCategory := "laptops"

	expected := []*entity.Product{{ID: 1, Name: "Laptop", CategoryID: 1}}

	productRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Run(func(ctx context.Context, filter repository.ProductFilter) {
			require.NotNil(t, filter.CategoryID)
			assert.Equal(t, int64(1), *filter.CategoryID)
			require.NotNil(t, filter.MinPrice)
			assert.True(t, filter.MinPrice.Equal(minPrice))
			require.NotNil(t, filter.MaxPrice)
			assert.True(t, filter.MaxPrice.Equal(maxPrice))
			require.NotNil(t, filter.SubCategory)
			assert.Equal(t, "laptops", *filter.SubCategory)
		}).
		Return(expected, nil)

	products, err := service.SearchProducts(ctx, &usecase.SearchProductsInput{
		CategoryID:  &categoryID,
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		SubCategory: &subCategory,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_SearchProducts_NilInputMeansNoPredicates(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		Search(ctx, repository.ProductFilter{}).
		Return([]*entity.Product{}, nil)

	products, err := service.SearchProducts(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, "Keyboard", product.Name)
			product.ID = 21
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, &usecase.ProductInput{
		Name:       "Keyboard",
		Price:      decimal.RequireFromString("49.99"),
		CategoryID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), product.ID)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrProductNotFound)

	product, err := service.UpdateProduct(ctx, 99, &usecase.ProductInput{Name: "Ghost"})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	service, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().Delete(ctx, int64(42)).Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
