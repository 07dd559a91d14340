package repository

import (
	"context"

	"geoalert/internal/domain/entity"
)

// EventRepository stores events, their collaborators and attendees, and answers
// the spatial question of which active geofences contain an event.
type EventRepository interface {
	// Create inserts the event and fills in its generated ID.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID returns ErrEventNotFound when the event does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// FindByCreator lists events created by userID, newest first.
	FindByCreator(ctx context.Context, userID int64) ([]*entity.Event, error)

	// Update overwrites name, time and location. Last write wins.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes the event together with its collaborator and attendee rows.
	Delete(ctx context.Context, id int64) error

	// FindIntersections returns one row per active geofence intersecting the event point.
	// It always reads from the primary so a just-created event is visible.
	FindIntersections(ctx context.Context, eventID int64) ([]entity.IntersectionMatch, error)

	// AddCollaborator returns ErrAlreadyCollaborating for a duplicate pair and ErrEventNotFound for a missing event.
	AddCollaborator(ctx context.Context, eventID, userID int64) error

	// AddAttendee returns ErrAlreadyAttending for a duplicate pair and ErrEventNotFound for a missing event.
	AddAttendee(ctx context.Context, eventID, userID int64) error

	// CollaboratorIDs lists the user IDs allowed to mutate the event.
	CollaboratorIDs(ctx context.Context, eventID int64) ([]int64, error)

	ListCollaborators(ctx context.Context, eventID int64) ([]*entity.User, error)

	ListAttendees(ctx context.Context, eventID int64) ([]*entity.User, error)
}
