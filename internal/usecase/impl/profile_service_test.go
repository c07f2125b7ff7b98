package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	mockRepo "easyshop/internal/mocks/repository"
	"easyshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProfileService(profileRepo, logger), profileRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, profileRepo := createTestProfileService(t)
	ctx := context.Background()

	expected := &entity.Profile{
		UserID:  1,
		Address: "1 Main St",
		City:    "Springfield",
	}

	profileRepo.EXPECT().FindByUserID(ctx, int64(1)).Return(expected, nil)

	profile, err := service.GetProfile(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, profileRepo := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.EXPECT().FindByUserID(ctx, int64(2)).Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfile(ctx, 2)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	service, profileRepo := createTestProfileService(t)
	ctx := context.Background()

	input := &usecase.UpdateProfileInput{
		FirstName: "Alice",
		Address:   "2 Oak Ave",
		City:      "Shelbyville",
		Zip:       "62565",
	}

	profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, int64(1), profile.UserID)
			assert.Equal(t, "2 Oak Ave", profile.Address)
		}).
		Return(nil)

	profile, err := service.UpdateProfile(ctx, 1, input)

	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "Shelbyville", profile.City)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	service, profileRepo := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrProfileNotFound)

	profile, err := service.UpdateProfile(ctx, 3, &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
