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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository, *mockRepo.MockProductRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCategoryService(categoryRepo, productRepo, logger), categoryRepo, productRepo
}

func TestCategoryService_ListCategories(t *testing.T) {
	service, categoryRepo, _ := createTestCategoryService(t)
	ctx := context.Background()

	expected := []*entity.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Books"},
	}

	categoryRepo.EXPECT().List(ctx).Return(expected, nil)

	categories, err := service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	service, categoryRepo, _ := createTestCategoryService(t)
	ctx := context.Background()

	categoryRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCategoryNotFound)

	category, err := service.GetCategory(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_ListCategoryProducts(t *testing.T) {
	service, _, productRepo := createTestCategoryService(t)
	ctx := context.Background()

	expected := []*entity.Product{{ID: 1, Name: "Laptop", CategoryID: 1}}

	productRepo.EXPECT().ListByCategoryID(ctx, int64(1)).Return(expected, nil)

	products, err := service.ListCategoryProducts(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	service, categoryRepo, _ := createTestCategoryService(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = 11
		}).
		Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Toys"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), category.ID)
	assert.Equal(t, "Toys", category.Name)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	service, categoryRepo, _ := createTestCategoryService(t)
	ctx := context.Background()

	categoryRepo.EXPECT().Delete(ctx, int64(42)).Return(repository.ErrCategoryNotFound)

	err := service.DeleteCategory(ctx, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
