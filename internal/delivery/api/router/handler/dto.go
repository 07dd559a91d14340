package handler

import (
	"strconv"
	"time"

	"geoalert/internal/delivery/api/middleware"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/geometry"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
)

// EventResponse is the public representation of an event.
type EventResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Time      time.Time         `json:"time"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Location  *geojson.Geometry `json:"location"`
	CreatorID int64             `json:"creator_id"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateEventResponse adds the notification summary to the stored event.
type CreateEventResponse struct {
	Event         EventResponse       `json:"event"`
	Notifications entity.FanOutReport `json:"notifications"`
}

// GeofenceResponse is the public representation of a geofence.
type GeofenceResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	IsActive bool              `json:"is_active"`
	UserID   int64             `json:"user_id"`
	Vertices []geometry.LatLng `json:"vertices"`
	Boundary *geojson.Geometry `json:"boundary"`
}

// UserResponse never carries credentials.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Photo     string `json:"photo,omitempty"`
	Role      string `json:"role"`
}

func toEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		Time:      e.Time,
		Latitude:  e.Latitude(),
		Longitude: e.Longitude(),
		Location:  geometry.GeoJSON(e.Location),
		CreatorID: e.CreatorID,
		CreatedAt: e.CreatedAt,
	}
}

func toEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}

	return out
}

func toGeofenceResponse(g *entity.Geofence) GeofenceResponse {
	return GeofenceResponse{
		ID:       g.ID,
		Name:     g.Name,
		IsActive: g.IsActive,
		UserID:   g.UserID,
		Vertices: geometry.Vertices(g.Boundary),
		Boundary: geometry.GeoJSON(g.Boundary),
	}
}

func toGeofenceResponses(geofences []*entity.Geofence) []GeofenceResponse {
	out := make([]GeofenceResponse, 0, len(geofences))
	for _, g := range geofences {
		out = append(out, toGeofenceResponse(g))
	}

	return out
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Photo:     u.Photo,
		Role:      u.Role.String(),
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func callerFrom(c echo.Context) (entity.Caller, error) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrUnauthorized
	}

	return caller, nil
}
