package repository

import (
	"context"

	"geoalert/internal/domain/entity"
)

// GeofenceRepository stores consumer geofences.
type GeofenceRepository interface {
	// Create inserts the geofence and fills in its generated ID.
	Create(ctx context.Context, geofence *entity.Geofence) error

	// FindByID returns ErrGeofenceNotFound when the geofence does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Geofence, error)

	FindByUserID(ctx context.Context, userID int64) ([]*entity.Geofence, error)

	// Update overwrites name, boundary and active flag.
	Update(ctx context.Context, geofence *entity.Geofence) error

	Delete(ctx context.Context, id int64) error
}
