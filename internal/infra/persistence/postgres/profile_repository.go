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

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile for a user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

// FindByUserID retrieves the profile for a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Update replaces the profile data for profile.UserID.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"first_name": profileM.FirstName,
			"last_name":  profileM.LastName,
			"phone":      profileM.Phone,
			"email":      profileM.Email,
			"address":    profileM.Address,
			"city":       profileM.City,
			"state":      profileM.State,
			"zip":        profileM.Zip,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	// If no rows were affected, the user has no profile row.
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		Zip:       data.Zip,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		Zip:       data.Zip,
	}
}
