package impl

import (
	"context"
	"log/slog"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/authz"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/geometry"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	"geoalert/internal/usecase"
)

type geofenceService struct {
	geofenceRepo repository.GeofenceRepository
	logger       *slog.Logger
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(geofenceRepo repository.GeofenceRepository, logger *slog.Logger) usecase.GeofenceUsecase {
	return &geofenceService{
		geofenceRepo: geofenceRepo,
		logger:       logger,
	}
}

func (s *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateGeofence stores an active geofence owned by the caller
func (s *geofenceService) CreateGeofence(ctx context.Context, caller entity.Caller, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if err := s.authorize(ctx, authz.Request{Caller: caller, Action: authz.ActionCreateGeofence}); err != nil {
		return nil, err
	}

	boundary, err := geometry.PolygonFrom(input.Vertices)
	if err != nil {
		return nil, err
	}

	geofence := &entity.Geofence{
		Name:     input.Name,
		Boundary: boundary,
		IsActive: true,
		UserID:   caller.UserID,
	}
	if err := s.geofenceRepo.Create(ctx, geofence); err != nil {
		return nil, errors.Wrap(err, "failed to create geofence")
	}

	s.log(ctx).Info("Geofence created",
		slog.Int64("geofenceID", geofence.ID),
		slog.String("boundary", geometry.WKT(geofence.Boundary)),
	)

	return geofence, nil
}

// GetGeofence returns a geofence to its owner
func (s *geofenceService) GetGeofence(ctx context.Context, caller entity.Caller, geofenceID int64) (*entity.Geofence, error) {
	return s.authorizeOwner(ctx, caller, geofenceID, authz.ActionReadGeofence)
}

// ListGeofencesByUser lists the geofences of userID, which must be the caller
func (s *geofenceService) ListGeofencesByUser(ctx context.Context, caller entity.Caller, userID int64) ([]*entity.Geofence, error) {
	if err := s.authorize(ctx, authz.Request{
		Caller:          caller,
		Action:          authz.ActionReadGeofence,
		ResourceOwnerID: userID,
	}); err != nil {
		return nil, err
	}

	geofences, err := s.geofenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return geofences, nil
}

// UpdateGeofence applies the given fields for the owner
func (s *geofenceService) UpdateGeofence(ctx context.Context, caller entity.Caller, geofenceID int64, input *usecase.UpdateGeofenceInput) (*entity.Geofence, error) {
	geofence, err := s.authorizeOwner(ctx, caller, geofenceID, authz.ActionUpdateGeofence)
	if err != nil {
		return nil, err
	}

	if input.Vertices != nil {
		boundary, err := geometry.PolygonFrom(input.Vertices)
		if err != nil {
			return nil, err
		}
		geofence.Boundary = boundary
	}
	if input.Name != nil {
		geofence.Name = *input.Name
	}
	if input.IsActive != nil {
		geofence.IsActive = *input.IsActive
	}

	if err := s.geofenceRepo.Update(ctx, geofence); err != nil {
		return nil, errors.Wrap(err, "failed to update geofence")
	}

	return geofence, nil
}

// DeleteGeofence removes the geofence for the owner
func (s *geofenceService) DeleteGeofence(ctx context.Context, caller entity.Caller, geofenceID int64) error {
	if _, err := s.authorizeOwner(ctx, caller, geofenceID, authz.ActionDeleteGeofence); err != nil {
		return err
	}

	if err := s.geofenceRepo.Delete(ctx, geofenceID); err != nil {
		return errors.Wrap(err, "failed to delete geofence")
	}

	return nil
}

func (s *geofenceService) authorizeOwner(ctx context.Context, caller entity.Caller, geofenceID int64, action authz.Action) (*entity.Geofence, error) {
	geofence, err := s.geofenceRepo.FindByID(ctx, geofenceID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := s.authorize(ctx, authz.Request{
		Caller:          caller,
		Action:          action,
		ResourceOwnerID: geofence.UserID,
	}); err != nil {
		return nil, err
	}

	return geofence, nil
}

func (s *geofenceService) authorize(ctx context.Context, req authz.Request) error {
	decision := authz.Authorize(req)
	if !decision.Allowed {
		s.log(ctx).Debug("Request denied",
			slog.String("action", string(req.Action)),
			slog.Int64("userID", req.Caller.UserID),
			slog.String("reason", string(decision.Reason)),
		)
	}

	return decision.Err()
}
