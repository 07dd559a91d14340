package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geoalert/internal/delivery/api/response"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest represents the request body for publishing an event.
// Coordinate ranges are checked by the geometry builder.
type CreateEventRequest struct {
	Name      string    `json:"name" validate:"required,max=255"`
	Time      time.Time `json:"time" validate:"required"`
	Latitude  *float64  `json:"latitude" validate:"required"`
	Longitude *float64  `json:"longitude" validate:"required"`
}

// UpdateEventRequest represents the request body for updating an event
type UpdateEventRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Time      *time.Time `json:"time,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
}

// ScanRequest carries the payload read from an event QR code
type ScanRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateEvent publishes an event and notifies matching geofence owners
func (h *EventHandler) CreateEvent(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.eventUC.CreateEvent(c.Request().Context(), caller, &usecase.CreateEventInput{
		Name:      req.Name,
		Time:      req.Time,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Event published",
		slog.Int64("event_id", output.Event.ID),
		slog.Int("recipients", output.FanOut.Recipients),
		slog.Int("failed", output.FanOut.Failed),
		slog.Bool("degraded", output.FanOut.Degraded),
	)

	return response.Success(c, http.StatusCreated, CreateEventResponse{
		Event:         toEventResponse(output.Event),
		Notifications: output.FanOut,
	})
}

// GetEvent returns a single event
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toEventResponse(event))
}

// UpdateEvent changes an event the caller collaborates on
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), caller, eventID, &usecase.UpdateEventInput{
		Name:      req.Name,
		Time:      req.Time,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toEventResponse(event))
}

// DeleteEvent removes an event the caller collaborates on
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), caller, eventID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Collaborate adds the calling organization as a collaborator
func (h *EventHandler) Collaborate(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventUC.CollaborateOnEvent(c.Request().Context(), caller, eventID); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"event_id": eventID, "user_id": caller.UserID})
}

// Attend registers the calling consumer as an attendee
func (h *EventHandler) Attend(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventUC.AttendEvent(c.Request().Context(), caller, eventID); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"event_id": eventID, "user_id": caller.UserID})
}

// Scan registers the calling consumer for the event in a scanned QR code
func (h *EventHandler) Scan(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.eventUC.AttendByQRCode(c.Request().Context(), caller, req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toEventResponse(event))
}

// ListAttendees lists the users attending an event
func (h *EventHandler) ListAttendees(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	users, err := h.eventUC.ListAttendees(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// ListCollaborators lists the users allowed to manage an event
func (h *EventHandler) ListCollaborators(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	users, err := h.eventUC.ListCollaborators(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// ListByOwner lists events created by a user
func (h *EventHandler) ListByOwner(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	events, err := h.eventUC.ListEventsByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toEventResponses(events))
}

// QRCode renders the event link as a PNG
func (h *EventHandler) QRCode(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.eventUC.EventQRCode(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
