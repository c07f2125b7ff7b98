package repository

import (
	"context"

	"easyshop/internal/domain/entity"
	"easyshop/internal/errors"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by id.
	// Returns ErrCategoryNotFound if no such category exists.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Create persists a new category and fills in the storage-assigned id.
	Create(ctx context.Context, category *entity.Category) error

	// Update replaces the category data for category.ID.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by id.
	// Returns ErrCategoryNotFound if no such category exists.
	Delete(ctx context.Context, id int64) error
}
