// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"easyshop/internal/domain/entity"
	"easyshop/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create persists a new user and fills in the storage-assigned id.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by id.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	// Returns ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
