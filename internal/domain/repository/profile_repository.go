package repository

import (
	"context"

	"easyshop/internal/domain/entity"
	"easyshop/internal/errors"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for shipping profile persistence.
// Profiles are one-to-one with users.
type ProfileRepository interface {
	// Create persists a new profile for a user.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile for a user.
	// Returns ErrProfileNotFound if the user has no profile.
	FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error)

	// Update replaces the profile data for profile.UserID.
	// Returns ErrProfileNotFound if the user has no profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
