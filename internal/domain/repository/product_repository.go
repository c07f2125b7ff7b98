package repository

import (
	"context"

	"easyshop/internal/domain/entity"
	"easyshop/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter holds the optional predicates for a product search.
// Nil fields are not applied.
type ProductFilter struct {
	CategoryID  *int64
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SubCategory *string
}

// ProductRepository defines the interface for product catalog persistence.
// Cart and checkout consume it read-only to snapshot authoritative pricing.
type ProductRepository interface {
	// Search retrieves products matching the filter predicates.
	Search(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListGenres retrieves the distinct non-empty subcategory values.
	ListGenres(ctx context.Context) ([]string, error)

	// ListByCategoryID retrieves all products in a category.
	ListByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// FindByID retrieves a product by id.
	// Returns ErrProductNotFound if no such product exists.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Create persists a new product and fills in the storage-assigned id.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the product data for product.ID.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id.
	// Returns ErrProductNotFound if no such product exists.
	Delete(ctx context.Context, id int64) error
}
