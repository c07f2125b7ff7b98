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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// SearchProducts retrieves products matching the given predicates.
func (srv *productService) SearchProducts(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{}
	if input != nil {
		filter.CategoryID = input.CategoryID
		filter.MinPrice = input.MinPrice
		filter.MaxPrice = input.MaxPrice
		filter.SubCategory = input.SubCategory
	}

	products, err := srv.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ListGenres retrieves the distinct subcategory values.
func (srv *productService) ListGenres(ctx context.Context) ([]string, error) {
	genres, err := srv.productRepo.ListGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	return genres, nil
}

// GetProduct retrieves one product by id.
func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct persists a new product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(0, input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.Int64("productID", product.ID))

	return product, nil
}

// UpdateProduct replaces a product's data.
func (srv *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(id, input)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product.
func (srv *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", slog.Int64("productID", id))

	return nil
}

func productFromInput(id int64, input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		SubCategory: input.SubCategory,
		Stock:       input.Stock,
		Featured:    input.Featured,
		ImageURL:    input.ImageURL,
	}
}
