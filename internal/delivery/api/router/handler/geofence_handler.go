package handler

import (
	"log/slog"
	"net/http"

	"geoalert/internal/delivery/api/response"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/geometry"
	"geoalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence-related handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// CreateGeofenceRequest represents the request body for drawing a geofence
type CreateGeofenceRequest struct {
	Name     string            `json:"name" validate:"required,max=255"`
	Vertices []geometry.LatLng `json:"vertices" validate:"required"`
}

// UpdateGeofenceRequest represents the request body for updating a geofence
type UpdateGeofenceRequest struct {
	Name     *string           `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	IsActive *bool             `json:"is_active,omitempty"`
	Vertices []geometry.LatLng `json:"vertices,omitempty"`
}

// CreateGeofence stores a geofence owned by the caller
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	geofence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), caller, &usecase.CreateGeofenceInput{
		Name:     req.Name,
		Vertices: req.Vertices,
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Geofence created",
		slog.Int64("geofence_id", geofence.ID),
		slog.Int("vertices", len(req.Vertices)),
	)

	return response.Success(c, http.StatusCreated, toGeofenceResponse(geofence))
}

// GetGeofence returns one of the caller's geofences
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	geofenceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	geofence, err := h.geofenceUC.GetGeofence(c.Request().Context(), caller, geofenceID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toGeofenceResponse(geofence))
}

// ListByUser lists the geofences of a user, who must be the caller
func (h *GeofenceHandler) ListByUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	geofences, err := h.geofenceUC.ListGeofencesByUser(c.Request().Context(), caller, userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toGeofenceResponses(geofences))
}

// UpdateGeofence changes one of the caller's geofences
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	geofenceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	geofence, err := h.geofenceUC.UpdateGeofence(c.Request().Context(), caller, geofenceID, &usecase.UpdateGeofenceInput{
		Name:     req.Name,
		IsActive: req.IsActive,
		Vertices: req.Vertices,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toGeofenceResponse(geofence))
}

// DeleteGeofence removes one of the caller's geofences
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	geofenceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), caller, geofenceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
