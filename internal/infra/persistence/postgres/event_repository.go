package postgres

import (
	"context"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	"geoalert/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// intersectionQuery matches the event point against every active geofence.
// ST_Intersects is boundary inclusive and is served by the GIST index on geofence.geofence.
const intersectionQuery = `
SELECT e.event_id,
       e.event         AS event_name,
       e.time          AS event_time,
       u.user_id       AS owner_id,
       u.email_address AS owner_email,
       u.first_name    AS owner_first_name,
       g.geofence_id,
       g.name          AS geofence_name
FROM event e
JOIN geofence g ON ST_Intersects(e.location, g.geofence)
JOIN users u ON u.user_id = g.user_id
WHERE e.event_id = ?
  AND g.is_active = true
ORDER BY g.geofence_id`

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates an EventRepository backed by GORM and PostGIS.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	m := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = m.EventID
	event.CreatedAt = m.CreatedOn

	return nil
}

func (repo *eventRepository) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	var m model.EventModel
	if err := repo.db.WithContext(ctx).Where("event_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find event")
	}

	return toEventDomain(&m), nil
}

func (repo *eventRepository) FindByCreator(ctx context.Context, userID int64) ([]*entity.Event, error) {
	var models []model.EventModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(models))
	for i := range models {
		events = append(events, toEventDomain(&models[i]))
	}

	return events, nil
}

func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("event_id = ?", event.ID).
		Updates(map[string]any{
			"event":    event.Name,
			"time":     event.Time,
			"location": model.Point{Point: event.Location},
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}

	return nil
}

func (repo *eventRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.EventModel{}, "event_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}

	return nil
}

func (repo *eventRepository) FindIntersections(ctx context.Context, eventID int64) ([]entity.IntersectionMatch, error) {
	var rows []model.IntersectionRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(intersectionQuery, eventID).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve geofence intersections")
	}

	matches := make([]entity.IntersectionMatch, 0, len(rows))
	for _, r := range rows {
		matches = append(matches, entity.IntersectionMatch{
			EventID:        r.EventID,
			EventName:      r.EventName,
			EventTime:      r.EventTime,
			OwnerID:        r.OwnerID,
			OwnerEmail:     r.OwnerEmail,
			OwnerFirstName: r.OwnerFirstName,
			GeofenceID:     r.GeofenceID,
			GeofenceName:   r.GeofenceName,
		})
	}

	return matches, nil
}

func (repo *eventRepository) AddCollaborator(ctx context.Context, eventID, userID int64) error {
	err := repo.db.WithContext(ctx).Create(&model.EventCollaboratorModel{EventID: eventID, UserID: userID}).Error

	return membershipError(err, domainerrors.ErrAlreadyCollaborating, "failed to add collaborator", repo.eventLookup(ctx, eventID))
}

func (repo *eventRepository) AddAttendee(ctx context.Context, eventID, userID int64) error {
	err := repo.db.WithContext(ctx).Create(&model.EventAttendeeModel{EventID: eventID, UserID: userID}).Error

	return membershipError(err, domainerrors.ErrAlreadyAttending, "failed to add attendee", repo.eventLookup(ctx, eventID))
}

// eventLookup reports whether the event row exists. Inside an aborted transaction the
// lookup itself fails and that failure is returned.
func (repo *eventRepository) eventLookup(ctx context.Context, eventID int64) func() (bool, error) {
	return func() (bool, error) {
		var count int64
		err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.EventModel{}).
			Where("event_id = ?", eventID).
			Count(&count).Error
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up event")
		}

		return count > 0, nil
	}
}

func (repo *eventRepository) CollaboratorIDs(ctx context.Context, eventID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := repo.db.WithContext(ctx).
		Model(&model.EventCollaboratorModel{}).
		Where("event_id = ?", eventID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load collaborators")
	}

	return ids, nil
}

func (repo *eventRepository) ListCollaborators(ctx context.Context, eventID int64) ([]*entity.User, error) {
	return repo.listMembers(ctx, model.EventCollaboratorModel{}.TableName(), eventID)
}

func (repo *eventRepository) ListAttendees(ctx context.Context, eventID int64) ([]*entity.User, error) {
	return repo.listMembers(ctx, model.EventAttendeeModel{}.TableName(), eventID)
}

func (repo *eventRepository) listMembers(ctx context.Context, joinTable string, eventID int64) ([]*entity.User, error) {
	var models []model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN "+joinTable+" m ON m.user_id = users.user_id").
		Where("m.event_id = ?", eventID).
		Order("users.user_id").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+joinTable)
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// membershipError maps insert failures on the event membership tables. The driver
// error is translated to gorm.ErrForeignKeyViolated without the constraint name, so a
// foreign key failure is resolved by looking the event up: a missing event is
// EVENT_NOT_FOUND, otherwise the user row is gone.
func membershipError(err error, duplicate domainerrors.AppError, details string, eventExists func() (bool, error)) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return duplicate
	case isForeignKeyConstraintViolation(err):
		exists, lookupErr := eventExists()
		switch {
		case lookupErr != nil:
			return lookupErr
		case !exists:
			return domainerrors.ErrEventNotFound
		default:
			return domainerrors.ErrUserNotFound
		}
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toEventDomain(m *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:        m.EventID,
		Name:      m.Event,
		Time:      m.Time,
		Location:  m.Location.Point,
		CreatorID: m.UserID,
		CreatedAt: m.CreatedOn,
	}
}

func fromEventDomain(e *entity.Event) *model.EventModel {
	return &model.EventModel{
		EventID:  e.ID,
		Event:    e.Name,
		Time:     e.Time,
		Location: model.Point{Point: e.Location},
		UserID:   e.CreatorID,
	}
}
