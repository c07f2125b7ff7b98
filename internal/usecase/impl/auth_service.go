// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"easyshop/config"
	deliverycontext "easyshop/internal/delivery/context"
	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/domain/service"
	"easyshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	profileRepo       repository.ProfileRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	passwordMinLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	passwordMinLength := 0
	if params.Config != nil && params.Config.Auth != nil {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &authService{
		userRepo:          params.UserRepo,
		profileRepo:       params.ProfileRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Registering an already-taken username
// returns the existing account rather than failing, so the endpoint is safe
// to repeat. An empty shipping profile is created best-effort; its failure
// never fails the registration.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password confirmation does not match")
	}
	if len(input.Password) < srv.passwordMinLength {
		return nil, domainerrors.ErrPasswordStrength.WrapMessage("password shorter than required minimum")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		role = entity.RoleUser
	}

	existing, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Info("Registration for existing username, returning existing account", slog.String("username", input.Username))

		return &usecase.RegisterOutput{User: existing}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up username during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:       input.Username,
		HashedPassword: hashedPassword,
		Role:           role,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A racing registration may have won the unique constraint; fall back
		// to the account it created.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			if winner, findErr := srv.userRepo.FindByUsername(ctx, input.Username); findErr == nil {
				return &usecase.RegisterOutput{User: winner}, nil
			}
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	// Best-effort, non-fatal: the user can fill the profile in later.
	if err := srv.profileRepo.Create(ctx, &entity.Profile{UserID: newUser.ID}); err != nil {
		srv.log(ctx).Warn("Failed to create empty profile for new user", slog.Int64("userID", newUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", newUser.ID), slog.String("role", newUser.Role.String()))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials and issues a signed access token.
// Unknown usernames and wrong passwords report the same failure so the
// endpoint does not leak which usernames exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to look up username during login")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}
