package impl

import (
	"context"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/errors"
	mockRepo "geoalert/internal/mocks/repository"
	mockService "geoalert/internal/mocks/service"
	"geoalert/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)

	return fx
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     " Alice@Example.com ",
		Password:  "correct horse",
		Username:  "alice",
		FirstName: "Alice",
		Role:      entity.RoleConsumer,
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.hasher.EXPECT().Hash("correct horse").Return("$2a$hash", nil)
		fx.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "alice@example.com" && u.PasswordHash == "$2a$hash" && u.Role == entity.RoleConsumer
			})).
			Run(func(_ context.Context, u *entity.User) { u.ID = aliceID }).
			Return(nil)

		out, err := fx.service.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, aliceID, out.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.hasher.EXPECT().Hash("correct horse").Return("$2a$hash", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		_, err := fx.service.Register(ctx, input)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.c", Password: "x", Role: "admin"})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidRole))
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.hasher.EXPECT().Hash("correct horse").Return("", errors.New("cost too high"))

		_, err := fx.service.Register(ctx, input)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrPasswordHashFailed))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	loginAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	user := func() *entity.User {
		return &entity.User{ID: organizerID, Email: "org@example.com", PasswordHash: "$2a$hash", Role: entity.RoleOrganization}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.service.now = func() time.Time { return loginAt }
		fx.userRepo.EXPECT().FindByEmail(ctx, "org@example.com").Return(user(), nil)
		fx.hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(organizerID, "organization").Return("signed.jwt", nil)
		fx.userRepo.EXPECT().TouchLastLogin(ctx, organizerID, loginAt).Return(nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "org@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", out.AccessToken)
		assert.Equal(t, &loginAt, out.User.LastLoginAt)
	})

	t.Run("last login failure does not block", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "org@example.com").Return(user(), nil)
		fx.hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(organizerID, "organization").Return("signed.jwt", nil)
		fx.userRepo.EXPECT().TouchLastLogin(ctx, organizerID, mock.Anything).Return(errors.New("read only"))

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "org@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Nil(t, out.User.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "org@example.com").Return(user(), nil)
		fx.hasher.EXPECT().Check("nope", "$2a$hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "org@example.com", Password: "nope"})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	fx.userRepo.EXPECT().Delete(ctx, aliceID).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, alice))
}
