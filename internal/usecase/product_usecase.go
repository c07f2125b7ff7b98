package usecase

import (
	"context"

	"easyshop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SearchProductsInput holds the optional search predicates. Nil fields are
// not applied.
type SearchProductsInput struct {
	CategoryID  *int64
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SubCategory *string
}

// ProductInput defines the data for creating or updating a product.
type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CategoryID  int64           `json:"categoryId" validate:"required"`
	Description string          `json:"description"`
	SubCategory string          `json:"subCategory"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `json:"imageUrl"`
}

// ProductUsecase defines the interface for product browsing and
// administration.
type ProductUsecase interface {
	// SearchProducts retrieves products matching the given predicates.
	SearchProducts(ctx context.Context, input *SearchProductsInput) ([]*entity.Product, error)

	// ListGenres retrieves the distinct subcategory values.
	ListGenres(ctx context.Context) ([]string, error)

	// GetProduct retrieves one product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct persists a new product. Admin only.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's data. Admin only.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Admin only.
	DeleteProduct(ctx context.Context, id int64) error
}
