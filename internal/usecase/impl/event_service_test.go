package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	mockRepo "geoalert/internal/mocks/repository"
	mockService "geoalert/internal/mocks/service"
	"geoalert/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	organizerID int64 = 1
	aliceID     int64 = 2
	bobID       int64 = 3
	newEventID  int64 = 10
)

var (
	organizer = entity.Caller{UserID: organizerID, Role: entity.RoleOrganization}
	alice     = entity.Caller{UserID: aliceID, Role: entity.RoleConsumer}
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service    usecase.EventUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	txEvents   *mockRepo.MockEventRepository
	eventRepo  *mockRepo.MockEventRepository
	dispatcher *mockService.MockNotificationDispatcher
	qrCode     *mockService.MockQRCodeService
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	fx := eventServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		txEvents:   mockRepo.NewMockEventRepository(t),
		eventRepo:  mockRepo.NewMockEventRepository(t),
		dispatcher: mockService.NewMockNotificationDispatcher(t),
		qrCode:     mockService.NewMockQRCodeService(t),
	}

	fx.service = NewEventService(EventServiceParams{
		TxManager:  fx.txManager,
		EventRepo:  fx.eventRepo,
		Dispatcher: fx.dispatcher,
		QRCode:     fx.qrCode,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return fx
}

// expectCreate sets up the transactional insert of an event by creatorID.
func (fx eventServiceFixtures) expectCreate(ctx context.Context, creatorID int64) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewEventRepository().Return(fx.txEvents)
	fx.txEvents.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(_ context.Context, event *entity.Event) { event.ID = newEventID }).
		Return(nil)
	fx.txEvents.EXPECT().AddCollaborator(ctx, newEventID, creatorID).Return(nil)
}

func bookFairInput() *usecase.CreateEventInput {
	return &usecase.CreateEventInput{
		Name:      "Book Fair",
		Time:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Latitude:  33.7224,
		Longitude: 73.0597,
	}
}

func match(ownerID int64, email string, geofenceID int64) entity.IntersectionMatch {
	return entity.IntersectionMatch{
		EventID:        newEventID,
		EventName:      "Book Fair",
		OwnerID:        ownerID,
		OwnerEmail:     email,
		OwnerFirstName: "Alice",
		GeofenceID:     geofenceID,
		GeofenceName:   "F-7 Markaz",
	}
}

func TestEventService_CreateEvent_NotifiesContainingGeofenceOwner(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.expectCreate(ctx, organizerID)
	fx.eventRepo.EXPECT().
		FindIntersections(mock.Anything, newEventID).
		Return([]entity.IntersectionMatch{match(aliceID, "alice@example.com", 100)}, nil)
	fx.dispatcher.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n entity.Notice) bool {
			return n.EventID == newEventID && n.EventName == "Book Fair" && n.RecipientID == aliceID
		})).
		Return(nil).
		Once()

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)

	assert.Equal(t, newEventID, out.Event.ID)
	assert.Equal(t, organizerID, out.Event.CreatorID)
	assert.InDelta(t, 33.7224, out.Event.Latitude(), 1e-9)
	assert.InDelta(t, 73.0597, out.Event.Longitude(), 1e-9)
	assert.Equal(t, entity.FanOutReport{Matched: 1, Recipients: 1, Sent: 1}, out.FanOut)
}

func TestEventService_CreateEvent_InactiveGeofenceSendsNothing(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.expectCreate(ctx, organizerID)
	// The store filters inactive geofences, so the lookup comes back empty.
	fx.eventRepo.EXPECT().FindIntersections(mock.Anything, newEventID).Return(nil, nil)

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)

	assert.Equal(t, entity.FanOutReport{}, out.FanOut)
	fx.dispatcher.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestEventService_CreateEvent_SameOwnerTwoGeofencesNotifiedOnce(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.expectCreate(ctx, organizerID)
	fx.eventRepo.EXPECT().
		FindIntersections(mock.Anything, newEventID).
		Return([]entity.IntersectionMatch{
			match(aliceID, "alice@example.com", 100),
			match(aliceID, " Alice@Example.com", 101),
		}, nil)
	fx.dispatcher.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n entity.Notice) bool { return n.RecipientID == aliceID })).
		Return(nil).
		Once()

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)

	assert.Equal(t, 2, out.FanOut.Matched)
	assert.Equal(t, 1, out.FanOut.Recipients)
	assert.Equal(t, 1, out.FanOut.Sent)
}

func TestEventService_CreateEvent_DispatchFailureIsIsolated(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.expectCreate(ctx, organizerID)
	fx.eventRepo.EXPECT().
		FindIntersections(mock.Anything, newEventID).
		Return([]entity.IntersectionMatch{
			match(11, "first@example.com", 100),
			match(12, "second@example.com", 101),
			match(13, "third@example.com", 102),
		}, nil)

	var mu sync.Mutex
	var delivered []int64
	fx.dispatcher.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("entity.Notice")).
		RunAndReturn(func(_ context.Context, n entity.Notice) error {
			if n.RecipientID == 12 {
				return errors.New("mailbox unavailable")
			}
			mu.Lock()
			delivered = append(delivered, n.RecipientID)
			mu.Unlock()

			return nil
		}).
		Times(3)

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)

	assert.Equal(t, newEventID, out.Event.ID)
	assert.ElementsMatch(t, []int64{11, 13}, delivered)
	assert.Equal(t, 2, out.FanOut.Sent)
	assert.Equal(t, 1, out.FanOut.Failed)
}

func TestEventService_CreateEvent_IntersectionFailureDegrades(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.expectCreate(ctx, organizerID)
	fx.eventRepo.EXPECT().
		FindIntersections(mock.Anything, newEventID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "intersection query failed"))

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)

	assert.Equal(t, newEventID, out.Event.ID)
	assert.True(t, out.FanOut.Degraded)
	assert.Zero(t, out.FanOut.Sent)
}

func TestEventService_CreateEvent_SurvivesRequestCancellation(t *testing.T) {
	fx := createTestEventService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.expectCreate(ctx, organizerID)
	fx.eventRepo.EXPECT().
		FindIntersections(mock.Anything, newEventID).
		RunAndReturn(func(stageCtx context.Context, _ int64) ([]entity.IntersectionMatch, error) {
			cancel()

			return []entity.IntersectionMatch{match(aliceID, "alice@example.com", 100)}, stageCtx.Err()
		})
	fx.dispatcher.EXPECT().
		Notify(mock.Anything, mock.AnythingOfType("entity.Notice")).
		RunAndReturn(func(callCtx context.Context, _ entity.Notice) error { return callCtx.Err() })

	out, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.NoError(t, err)
	assert.Equal(t, 1, out.FanOut.Sent)
}

func TestEventService_CreateEvent_InvalidCoordinatePersistsNothing(t *testing.T) {
	fx := createTestEventService(t)

	input := bookFairInput()
	input.Latitude = 91

	_, err := fx.service.CreateEvent(context.Background(), organizer, input)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidCoordinate))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestEventService_CreateEvent_ConsumerForbidden(t *testing.T) {
	fx := createTestEventService(t)

	_, err := fx.service.CreateEvent(context.Background(), alice, bookFairInput())
	assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
}

func TestEventService_CreateEvent_PersistenceFailure(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create event"))

	_, err := fx.service.CreateEvent(ctx, organizer, bookFairInput())
	require.Error(t, err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", domainerrors.FromError(err).ErrorCode())
}

func storedEvent() *entity.Event {
	return &entity.Event{ID: newEventID, Name: "Book Fair", CreatorID: organizerID}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	newName := "Spring Book Fair"
	lat, lng := 33.70, 73.05

	t.Run("collaborator updates name and location", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return([]int64{organizerID}, nil)
		fx.eventRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

		event, err := fx.service.UpdateEvent(ctx, organizer, newEventID, &usecase.UpdateEventInput{
			Name: &newName, Latitude: &lat, Longitude: &lng,
		})
		require.NoError(t, err)
		assert.Equal(t, newName, event.Name)
		assert.InDelta(t, lat, event.Latitude(), 1e-9)
	})

	t.Run("non collaborator is forbidden", func(t *testing.T) {
		fx := createTestEventService(t)
		other := entity.Caller{UserID: 99, Role: entity.RoleOrganization}
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return([]int64{organizerID}, nil)

		_, err := fx.service.UpdateEvent(ctx, other, newEventID, &usecase.UpdateEventInput{Name: &newName})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("collaborator lookup failure denies", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return(nil, errors.New("replica lag"))

		_, err := fx.service.UpdateEvent(ctx, organizer, newEventID, &usecase.UpdateEventInput{Name: &newName})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("latitude without longitude is rejected", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return([]int64{organizerID}, nil)

		_, err := fx.service.UpdateEvent(ctx, organizer, newEventID, &usecase.UpdateEventInput{Latitude: &lat})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidCoordinate))
	})

	t.Run("missing event", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(nil, domainerrors.ErrEventNotFound)

		_, err := fx.service.UpdateEvent(ctx, organizer, newEventID, &usecase.UpdateEventInput{Name: &newName})
		assert.True(t, domainerrors.Is(err, domainerrors.ErrEventNotFound))
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("collaborator deletes", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return([]int64{organizerID, 5}, nil)
		fx.eventRepo.EXPECT().Delete(ctx, newEventID).Return(nil)

		require.NoError(t, fx.service.DeleteEvent(ctx, organizer, newEventID))
	})

	t.Run("consumer is forbidden", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().CollaboratorIDs(ctx, newEventID).Return([]int64{organizerID}, nil)

		err := fx.service.DeleteEvent(ctx, alice, newEventID)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestEventService_Membership(t *testing.T) {
	ctx := context.Background()

	t.Run("organization collaborates", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().AddCollaborator(ctx, newEventID, int64(7)).Return(nil)

		err := fx.service.CollaborateOnEvent(ctx, entity.Caller{UserID: 7, Role: entity.RoleOrganization}, newEventID)
		require.NoError(t, err)
	})

	t.Run("duplicate collaboration conflicts", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().AddCollaborator(ctx, newEventID, organizerID).Return(domainerrors.ErrAlreadyCollaborating)

		err := fx.service.CollaborateOnEvent(ctx, organizer, newEventID)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrAlreadyCollaborating))
	})

	t.Run("consumer cannot collaborate", func(t *testing.T) {
		fx := createTestEventService(t)

		err := fx.service.CollaborateOnEvent(ctx, alice, newEventID)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("consumer attends", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().AddAttendee(ctx, newEventID, aliceID).Return(nil)

		require.NoError(t, fx.service.AttendEvent(ctx, alice, newEventID))
	})

	t.Run("attending a missing event", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().AddAttendee(ctx, int64(404), aliceID).Return(domainerrors.ErrEventNotFound)

		err := fx.service.AttendEvent(ctx, alice, 404)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrEventNotFound))
	})

	t.Run("organization cannot attend", func(t *testing.T) {
		fx := createTestEventService(t)

		err := fx.service.AttendEvent(ctx, organizer, newEventID)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestEventService_AttendByQRCode(t *testing.T) {
	ctx := context.Background()
	qrData := "https://geoalert.example.com/events/10"

	t.Run("valid code", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.qrCode.EXPECT().ParseEventQR(qrData).Return(newEventID, nil)
		fx.eventRepo.EXPECT().AddAttendee(ctx, newEventID, aliceID).Return(nil)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)

		event, err := fx.service.AttendByQRCode(ctx, alice, qrData)
		require.NoError(t, err)
		assert.Equal(t, newEventID, event.ID)
	})

	t.Run("foreign code", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.qrCode.EXPECT().ParseEventQR("https://example.com").Return(0, errors.New("not an event URL"))

		_, err := fx.service.AttendByQRCode(ctx, alice, "https://example.com")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestEventService_Listings(t *testing.T) {
	ctx := context.Background()
	users := []*entity.User{{ID: aliceID, FirstName: "Alice"}}

	t.Run("attendees", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.eventRepo.EXPECT().ListAttendees(ctx, newEventID).Return(users, nil)

		got, err := fx.service.ListAttendees(ctx, newEventID)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("collaborators of a missing event", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(nil, domainerrors.ErrEventNotFound)

		_, err := fx.service.ListCollaborators(ctx, newEventID)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrEventNotFound))
	})

	t.Run("events by owner", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByCreator(ctx, organizerID).Return([]*entity.Event{storedEvent()}, nil)

		got, err := fx.service.ListEventsByOwner(ctx, organizerID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("qr code", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, newEventID).Return(storedEvent(), nil)
		fx.qrCode.EXPECT().GenerateEventQR(newEventID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.EventQRCode(ctx, newEventID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})
}
