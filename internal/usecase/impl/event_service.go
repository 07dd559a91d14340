// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/authz"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/geometry"
	"geoalert/internal/domain/repository"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"
	"geoalert/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager  repository.TransactionManager
	eventRepo  repository.EventRepository
	resolver   *intersectionResolver
	dispatcher service.NotificationDispatcher
	qrCode     service.QRCodeService

	stageTimeout    time.Duration
	dispatchTimeout time.Duration
	maxConcurrent   int

	logger *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	EventRepo  repository.EventRepository
	Dispatcher service.NotificationDispatcher
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	n := params.Config.Notification

	return &eventService{
		txManager:       params.TxManager,
		eventRepo:       params.EventRepo,
		resolver:        newIntersectionResolver(params.EventRepo),
		dispatcher:      params.Dispatcher,
		qrCode:          params.QRCode,
		stageTimeout:    n.StageTimeout,
		dispatchTimeout: n.DispatchTimeout,
		maxConcurrent:   n.MaxConcurrentDispatch,
		logger:          params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent stores the event with its creator as first collaborator, then notifies
// every owner of an active geofence containing the event point. Notification problems
// never fail the call.
func (srv *eventService) CreateEvent(ctx context.Context, caller entity.Caller, input *usecase.CreateEventInput) (*usecase.CreateEventOutput, error) {
	if err := srv.authorize(ctx, authz.Request{Caller: caller, Action: authz.ActionCreateEvent}); err != nil {
		return nil, err
	}

	location, err := geometry.PointFrom(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Name:      input.Name,
		Time:      input.Time,
		Location:  location,
		CreatorID: caller.UserID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		if err := eventRepo.Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		return errors.Wrap(eventRepo.AddCollaborator(ctx, event.ID, caller.UserID), "failed to register creator as collaborator")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist event", slog.Int64("userID", caller.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event created",
		slog.Int64("eventID", event.ID),
		slog.String("location", geometry.WKT(event.Location)),
	)

	return &usecase.CreateEventOutput{
		Event:  event,
		FanOut: srv.fanOut(ctx, event.ID),
	}, nil
}

// fanOut resolves, deduplicates and dispatches notices for a stored event.
func (srv *eventService) fanOut(ctx context.Context, eventID int64) entity.FanOutReport {
	resolved := bestEffort(ctx, srv.stageTimeout, []entity.IntersectionMatch{}, func(stageCtx context.Context) ([]entity.IntersectionMatch, error) {
		return srv.resolver.Resolve(stageCtx, eventID)
	})
	if resolved.Degraded() {
		srv.log(ctx).Warn("Intersection lookup failed, no notices sent",
			slog.Int64("eventID", eventID),
			slog.Any("error", resolved.Err),
		)
	}

	recipients := entity.DedupeByEmail(resolved.Value)
	report := entity.FanOutReport{
		Matched:    len(resolved.Value),
		Recipients: len(recipients),
		Degraded:   resolved.Degraded(),
	}
	if len(recipients) == 0 {
		return report
	}

	report.Sent, report.Failed = srv.dispatch(ctx, recipients)

	srv.log(ctx).Info("Event notices dispatched",
		slog.Int64("eventID", eventID),
		slog.Int("matched", report.Matched),
		slog.Int("recipients", report.Recipients),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)

	return report
}

// dispatch notifies every recipient concurrently. A failed call is logged and
// counted; it never cancels the others.
func (srv *eventService) dispatch(ctx context.Context, recipients []entity.IntersectionMatch) (sent, failed int) {
	var sentCount, failedCount atomic.Int64

	dispatchCtx := context.WithoutCancel(ctx)
	group := new(errgroup.Group)
	group.SetLimit(max(srv.maxConcurrent, 1))

	for _, match := range recipients {
		notice := entity.NoticeFromMatch(match)
		group.Go(func() error {
			callCtx, cancel := context.WithTimeout(dispatchCtx, srv.dispatchTimeout)
			defer cancel()

			if err := srv.dispatcher.Notify(callCtx, notice); err != nil {
				failedCount.Add(1)
				srv.log(ctx).Warn("Failed to notify geofence owner",
					slog.Int64("eventID", notice.EventID),
					slog.Int64("recipientID", notice.RecipientID),
					slog.Any("error", err),
				)

				return nil
			}
			sentCount.Add(1)

			return nil
		})
	}
	_ = group.Wait()

	return int(sentCount.Load()), int(failedCount.Load())
}

func (srv *eventService) GetEvent(ctx context.Context, eventID int64) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return event, nil
}

// UpdateEvent applies the given fields. Moving an event does not notify again.
func (srv *eventService) UpdateEvent(ctx context.Context, caller entity.Caller, eventID int64, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := srv.authorizeMember(ctx, caller, eventID, authz.ActionUpdateEvent)
	if err != nil {
		return nil, err
	}

	if err := applyEventUpdates(event, input); err != nil {
		return nil, err
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

func applyEventUpdates(event *entity.Event, input *usecase.UpdateEventInput) error {
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrInvalidCoordinate.WithDetails("latitude and longitude must be updated together")
	}
	if input.Latitude != nil {
		location, err := geometry.PointFrom(*input.Latitude, *input.Longitude)
		if err != nil {
			return err
		}
		event.Location = location
	}
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Time != nil {
		event.Time = *input.Time
	}

	return nil
}

func (srv *eventService) DeleteEvent(ctx context.Context, caller entity.Caller, eventID int64) error {
	if _, err := srv.authorizeMember(ctx, caller, eventID, authz.ActionDeleteEvent); err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Int64("eventID", eventID), slog.Int64("userID", caller.UserID))

	return nil
}

func (srv *eventService) CollaborateOnEvent(ctx context.Context, caller entity.Caller, eventID int64) error {
	if err := srv.authorize(ctx, authz.Request{Caller: caller, Action: authz.ActionCollaborateEvent}); err != nil {
		return err
	}

	return errors.WithStack(srv.eventRepo.AddCollaborator(ctx, eventID, caller.UserID))
}

func (srv *eventService) AttendEvent(ctx context.Context, caller entity.Caller, eventID int64) error {
	if err := srv.authorize(ctx, authz.Request{Caller: caller, Action: authz.ActionAttendEvent}); err != nil {
		return err
	}

	return errors.WithStack(srv.eventRepo.AddAttendee(ctx, eventID, caller.UserID))
}

func (srv *eventService) AttendByQRCode(ctx context.Context, caller entity.Caller, qrData string) (*entity.Event, error) {
	eventID, err := srv.qrCode.ParseEventQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code does not reference an event")
	}

	if err := srv.AttendEvent(ctx, caller, eventID); err != nil {
		return nil, err
	}

	return srv.GetEvent(ctx, eventID)
}

func (srv *eventService) ListAttendees(ctx context.Context, eventID int64) ([]*entity.User, error) {
	if _, err := srv.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	users, err := srv.eventRepo.ListAttendees(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attendees")
	}

	return users, nil
}

func (srv *eventService) ListCollaborators(ctx context.Context, eventID int64) ([]*entity.User, error) {
	if _, err := srv.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	users, err := srv.eventRepo.ListCollaborators(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collaborators")
	}

	return users, nil
}

func (srv *eventService) ListEventsByOwner(ctx context.Context, userID int64) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by owner")
	}

	return events, nil
}

func (srv *eventService) EventQRCode(ctx context.Context, eventID int64) ([]byte, error) {
	if _, err := srv.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateEventQR(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate event QR code")
	}

	return png, nil
}

// authorizeMember loads the event and checks that the caller collaborates on it.
// A missing event is reported before any permission problem.
func (srv *eventService) authorizeMember(ctx context.Context, caller entity.Caller, eventID int64, action authz.Action) (*entity.Event, error) {
	event, err := srv.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	collaborators, err := srv.eventRepo.CollaboratorIDs(ctx, eventID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load collaborators, denying",
			slog.Int64("eventID", eventID),
			slog.Any("error", err),
		)
		collaborators = nil
	}

	if err := srv.authorize(ctx, authz.Request{
		Caller:          caller,
		Action:          action,
		CollaboratorIDs: collaborators,
	}); err != nil {
		return nil, err
	}

	return event, nil
}

func (srv *eventService) authorize(ctx context.Context, req authz.Request) error {
	decision := authz.Authorize(req)
	if !decision.Allowed {
		srv.log(ctx).Debug("Request denied",
			slog.String("action", string(req.Action)),
			slog.Int64("userID", req.Caller.UserID),
			slog.String("reason", string(decision.Reason)),
		)
	}

	return decision.Err()
}
