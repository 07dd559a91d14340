package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"
	"geoalert/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens an account. The role cannot be changed afterwards.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	email := entity.NormalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login checks the password and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	loggedInAt := srv.now()
	if err := srv.userRepo.TouchLastLogin(ctx, user.ID, loggedInAt); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Int64("userID", user.ID), slog.Any("error", err))
	} else {
		user.LastLoginAt = &loggedInAt
	}

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// DeleteAccount removes the caller's account.
func (srv *authService) DeleteAccount(ctx context.Context, caller entity.Caller) error {
	if err := srv.userRepo.Delete(ctx, caller.UserID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", caller.UserID))

	return nil
}
