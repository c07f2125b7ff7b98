package usecase

import (
	"context"

	"easyshop/internal/domain/entity"
)

// CategoryInput defines the data for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryUsecase defines the interface for category browsing and
// administration.
type CategoryUsecase interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory retrieves one category by id.
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)

	// ListCategoryProducts retrieves all products in a category.
	ListCategoryProducts(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// CreateCategory persists a new category. Admin only.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory replaces a category's data. Admin only.
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category. Admin only.
	DeleteCategory(ctx context.Context, id int64) error
}
