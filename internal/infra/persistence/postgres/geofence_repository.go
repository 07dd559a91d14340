package postgres

import (
	"context"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	"geoalert/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository creates a GeofenceRepository backed by GORM and PostGIS.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{db: db}
}

func (repo *geofenceRepository) Create(ctx context.Context, geofence *entity.Geofence) error {
	m := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return geofenceWriteError(err, "failed to create geofence")
	}

	geofence.ID = m.GeofenceID

	return nil
}

func (repo *geofenceRepository) FindByID(ctx context.Context, id int64) (*entity.Geofence, error) {
	var m model.GeofenceModel
	if err := repo.db.WithContext(ctx).Where("geofence_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find geofence")
	}

	return toGeofenceDomain(&m), nil
}

func (repo *geofenceRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Geofence, error) {
	var models []model.GeofenceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("geofence_id").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(models))
	for i := range models {
		geofences = append(geofences, toGeofenceDomain(&models[i]))
	}

	return geofences, nil
}

func (repo *geofenceRepository) Update(ctx context.Context, geofence *entity.Geofence) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("geofence_id = ?", geofence.ID).
		Updates(map[string]any{
			"name":      geofence.Name,
			"geofence":  model.Polygon{Polygon: geofence.Boundary},
			"is_active": geofence.IsActive,
		})
	if result.Error != nil {
		return geofenceWriteError(result.Error, "failed to update geofence")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGeofenceNotFound
	}

	return nil
}

func (repo *geofenceRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.GeofenceModel{}, "geofence_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete geofence")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGeofenceNotFound
	}

	return nil
}

// geofenceWriteError maps the ST_IsValid check constraint to an invalid-geometry client error.
func geofenceWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidGeometry.WithDetails("polygon is self-intersecting or degenerate")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toGeofenceDomain(m *model.GeofenceModel) *entity.Geofence {
	return &entity.Geofence{
		ID:       m.GeofenceID,
		Name:     m.Name,
		Boundary: m.Geofence.Polygon,
		IsActive: m.IsActive,
		UserID:   m.UserID,
	}
}

func fromGeofenceDomain(g *entity.Geofence) *model.GeofenceModel {
	return &model.GeofenceModel{
		GeofenceID: g.ID,
		Name:       g.Name,
		Geofence:   model.Polygon{Polygon: g.Boundary},
		IsActive:   g.IsActive,
		UserID:     g.UserID,
	}
}
