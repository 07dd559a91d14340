package usecase

import (
	"context"

	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/geometry"
)

// CreateGeofenceInput is an ordered vertex list; the ring is closed by the service.
type CreateGeofenceInput struct {
	Name     string
	Vertices []geometry.LatLng
}

// UpdateGeofenceInput holds the fields to change.
type UpdateGeofenceInput struct {
	Name     *string
	IsActive *bool
	Vertices []geometry.LatLng // nil keeps the current boundary
}

// GeofenceUsecase defines geofence management for consumers.
type GeofenceUsecase interface {
	CreateGeofence(ctx context.Context, caller entity.Caller, input *CreateGeofenceInput) (*entity.Geofence, error)
	GetGeofence(ctx context.Context, caller entity.Caller, geofenceID int64) (*entity.Geofence, error)
	ListGeofencesByUser(ctx context.Context, caller entity.Caller, userID int64) ([]*entity.Geofence, error)
	UpdateGeofence(ctx context.Context, caller entity.Caller, geofenceID int64, input *UpdateGeofenceInput) (*entity.Geofence, error)
	DeleteGeofence(ctx context.Context, caller entity.Caller, geofenceID int64) error
}
