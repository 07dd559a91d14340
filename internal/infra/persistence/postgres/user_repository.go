package postgres

import (
	"context"
	"time"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	"geoalert/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by GORM.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.UserModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	err := repo.db.WithContext(ctx).
		Where("lower(email_address) = ?", entity.NormalizeEmail(email)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&m), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = m.UserID
	user.CreatedAt = m.CreatedOn

	return nil
}

func (repo *userRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("last_login_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update last login")
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "user_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Username:     m.Username,
		Email:        m.EmailAddress,
		Photo:        m.Photo,
		PasswordHash: m.Password,
		Role:         entity.RoleFromString(m.Role),
		IsVerified:   m.IsVerified,
		CreatedAt:    m.CreatedOn,
		LastLoginAt:  m.LastLoginAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		UserID:       u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		EmailAddress: entity.NormalizeEmail(u.Email),
		Photo:        u.Photo,
		Password:     u.PasswordHash,
		Role:         u.Role.String(),
		IsVerified:   u.IsVerified,
		LastLoginAt:  u.LastLoginAt,
	}
}
