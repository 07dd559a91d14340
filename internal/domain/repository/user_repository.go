// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"geoalert/internal/domain/entity"
)

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by ID. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email address. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its generated ID. Returns ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error

	// Delete removes the account. Owned geofences and event memberships cascade.
	Delete(ctx context.Context, id int64) error
}
