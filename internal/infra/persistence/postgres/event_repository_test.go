package postgres

import (
	"sync"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/errors"
	"geoalert/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func TestMembershipError(t *testing.T) {
	translate := gormpg.Dialector{}.Translate
	eventFound := func() (bool, error) { return true, nil }
	eventGone := func() (bool, error) { return false, nil }

	tests := []struct {
		name        string
		err         error
		eventExists func() (bool, error)
		want        domainerrors.AppError
	}{
		{name: "no error", err: nil, want: nil},
		{
			name: "duplicate pair",
			err:  translate(&pgconn.PgError{Code: "23505", ConstraintName: "event_attendees_pkey"}),
			want: domainerrors.ErrAlreadyAttending,
		},
		{
			name:        "missing event",
			err:         translate(&pgconn.PgError{Code: "23503", ConstraintName: "event_attendees_event_id_fkey"}),
			eventExists: eventGone,
			want:        domainerrors.ErrEventNotFound,
		},
		{
			name:        "missing user",
			err:         translate(&pgconn.PgError{Code: "23503", ConstraintName: "event_attendees_user_id_fkey"}),
			eventExists: eventFound,
			want:        domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := tt.eventExists
			if lookup == nil {
				lookup = func() (bool, error) {
					t.Fatal("event lookup must only run on foreign key violations")

					return false, nil
				}
			}

			got := membershipError(tt.err, domainerrors.ErrAlreadyAttending, "add attendee", lookup)
			if tt.want == nil {
				assert.NoError(t, got)

				return
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("lookup failure", func(t *testing.T) {
		lookupErr := domainerrors.NewDatabaseExecuteError(errors.New("current transaction is aborted"), "failed to look up event")
		got := membershipError(
			translate(&pgconn.PgError{Code: "23503", ConstraintName: "event_collaborators_user_id_fkey"}),
			domainerrors.ErrAlreadyCollaborating,
			"add collaborator",
			func() (bool, error) { return false, lookupErr },
		)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", domainerrors.FromError(got).ErrorCode())
	})

	other := membershipError(errors.New("connection reset"), domainerrors.ErrAlreadyAttending, "add attendee", eventFound)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", domainerrors.FromError(other).ErrorCode())
}

func TestEventMapping(t *testing.T) {
	at := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	event := &entity.Event{
		ID:        5,
		Name:      "Night Market",
		Time:      at,
		Location:  orb.Point{73.0597, 33.7224},
		CreatorID: 9,
	}

	m := fromEventDomain(event)
	assert.Equal(t, "Night Market", m.Event)
	assert.Equal(t, int64(9), m.UserID)
	assert.Equal(t, orb.Point{73.0597, 33.7224}, m.Location.Point)

	back := toEventDomain(m)
	assert.Equal(t, event.Name, back.Name)
	assert.Equal(t, event.Location, back.Location)
	assert.InDelta(t, 33.7224, back.Latitude(), 1e-9)
	assert.InDelta(t, 73.0597, back.Longitude(), 1e-9)
}

func TestGeofenceWriteError(t *testing.T) {
	err := geofenceWriteError(&pgconn.PgError{Code: "23514", ConstraintName: "geofence_valid"}, "create")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidGeometry))

	err = geofenceWriteError(gorm.ErrForeignKeyViolated, "create")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUserNotFound))
}

func TestIntersectionQueryAndUserSchema(t *testing.T) {
	assert.Contains(t, intersectionQuery, "ST_Intersects(e.location, g.geofence)")
	assert.Contains(t, intersectionQuery, "g.is_active = true")

	// Accounts are hard deleted with their geofences cascading, so the users table
	// carries no soft-delete flag for the join to filter on.
	users, err := schema.Parse(&model.UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	if assert.NoError(t, err) {
		assert.Nil(t, users.LookUpField("is_deleted"))
		assert.NotNil(t, users.LookUpField("email_address"))
	}
	assert.NotContains(t, intersectionQuery, "is_deleted")
}
