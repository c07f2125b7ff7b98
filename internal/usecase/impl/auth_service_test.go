package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"easyshop/config"
	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	mockRepo "easyshop/internal/mocks/repository"
	mockService "easyshop/internal/mocks/service"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{PasswordMinLength: 8},
	}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username:        "alice",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("sup3rsecret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "hashed", user.HashedPassword)
			assert.Equal(t, entity.RoleUser, user.Role)
			user.ID = 5
		}).
		Return(nil)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, int64(5), profile.UserID)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(5), output.User.ID)
}

func TestAuthService_Register_ExistingUsernameReturnsExistingUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 3, Username: "alice", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:        "alice",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:        "alice",
		Password:        "sup3rsecret",
		ConfirmPassword: "different",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:        "alice",
		Password:        "short",
		ConfirmPassword: "short",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_ProfileCreateFailureIsNonFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("sup3rsecret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 6
		}).
		Return(nil)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(errors.New("profile table unavailable"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:        "bob",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), output.User.ID)
}

func TestAuthService_Register_InvalidRoleFallsBackToUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "carol").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("sup3rsecret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleUser, user.Role)
			user.ID = 7
		}).
		Return(nil)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:        "carol",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
		Role:            "superuser",
	})

	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 5, Username: "alice", HashedPassword: "hashed", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("sup3rsecret", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(int64(5), []string{"user"}).Return("token-123", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "sup3rsecret"})

	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 5, Username: "alice", HashedPassword: "hashed"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	// Same failure as a wrong password, so usernames are not enumerable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
