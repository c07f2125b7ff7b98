package usecase

import (
	"context"

	"easyshop/internal/domain/entity"
)

// UpdateProfileInput defines the shipping and contact data a user may edit.
type UpdateProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// ProfileUsecase defines the interface for the authenticated user's shipping
// profile.
type ProfileUsecase interface {
	// GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	// UpdateProfile replaces the user's profile data.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.Profile, error)
}
