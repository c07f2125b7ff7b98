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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the user's shipping profile.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile replaces the user's shipping profile data.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.logger.Debug("Profile updated", slog.Int64("userID", userID))

	return profile, nil
}
