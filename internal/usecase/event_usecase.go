package usecase

import (
	"context"
	"time"

	"geoalert/internal/domain/entity"
)

// CreateEventInput is what an organization submits to publish an event.
type CreateEventInput struct {
	Name      string
	Time      time.Time
	Latitude  float64
	Longitude float64
}

// UpdateEventInput holds the fields to change. Latitude and Longitude go together.
type UpdateEventInput struct {
	Name      *string
	Time      *time.Time
	Latitude  *float64
	Longitude *float64
}

// CreateEventOutput is the stored event and what the notification fan-out did.
type CreateEventOutput struct {
	Event  *entity.Event
	FanOut entity.FanOutReport
}

// EventUsecase defines event publishing, membership and listing.
type EventUsecase interface {
	CreateEvent(ctx context.Context, caller entity.Caller, input *CreateEventInput) (*CreateEventOutput, error)
	GetEvent(ctx context.Context, eventID int64) (*entity.Event, error)
	UpdateEvent(ctx context.Context, caller entity.Caller, eventID int64, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, caller entity.Caller, eventID int64) error

	CollaborateOnEvent(ctx context.Context, caller entity.Caller, eventID int64) error
	AttendEvent(ctx context.Context, caller entity.Caller, eventID int64) error
	// AttendByQRCode registers the caller for the event encoded in a scanned QR payload.
	AttendByQRCode(ctx context.Context, caller entity.Caller, qrData string) (*entity.Event, error)

	ListAttendees(ctx context.Context, eventID int64) ([]*entity.User, error)
	ListCollaborators(ctx context.Context, eventID int64) ([]*entity.User, error)
	ListEventsByOwner(ctx context.Context, userID int64) ([]*entity.Event, error)

	// EventQRCode renders a PNG QR code of the public event URL.
	EventQRCode(ctx context.Context, eventID int64) ([]byte, error)
}
