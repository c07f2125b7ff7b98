package postgres

import (
	"context"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Search retrieves products matching the filter predicates.
// Nil predicates are not applied.
func (repo *productRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.SubCategory != nil {
		query = query.Where("LOWER(subcategory) = LOWER(?)", *filter.SubCategory)
	}

	var productModels []*model.ProductModel
	if err := query.Order("product_id").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(productModels), nil
}

// ListGenres retrieves the distinct non-empty subcategory values.
func (repo *productRepository) ListGenres(ctx context.Context) ([]string, error) {
	var genres []string

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("subcategory").
		Where("subcategory IS NOT NULL AND subcategory <> ''").
		Order("subcategory").
		Pluck("subcategory", &genres).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	return genres, nil
}

// ListByCategoryID retrieves all products in a category.
func (repo *productRepository) ListByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("product_id").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomains(productModels), nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ProductID

	return nil
}

// Update replaces the product data for product.ID.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
			"description": product.Description,
			"subcategory": product.SubCategory,
			"stock":       product.Stock,
			"featured":    product.Featured,
			"image_url":   product.ImageURL,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ProductID,
		Name:        data.Name,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		SubCategory: data.SubCategory,
		Stock:       data.Stock,
		Featured:    data.Featured,
		ImageURL:    data.ImageURL,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:   data.ID,
		Name:        data.Name,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		SubCategory: data.SubCategory,
		Stock:       data.Stock,
		Featured:    data.Featured,
		ImageURL:    data.ImageURL,
	}
}
