package impl

import (
	"context"
	"log/slog"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// ListCategories retrieves all categories.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory retrieves one category by id.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// ListCategoryProducts retrieves all products in a category.
func (srv *categoryService) ListCategoryProducts(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	return products, nil
}

// CreateCategory persists a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.logger.Info("Category created", slog.Int64("categoryID", category.ID))

	return category, nil
}

// UpdateCategory replaces a category's data.
func (srv *categoryService) UpdateCategory(ctx context.Context, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.logger.Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}
