// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geoalert/internal/delivery/api/middleware"
	"geoalert/internal/delivery/api/router/handler"
	"geoalert/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	EventHandler    *handler.EventHandler
	GeofenceHandler *handler.GeofenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	eventHandler    *handler.EventHandler
	geofenceHandler *handler.GeofenceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		eventHandler:    params.EventHandler,
		geofenceHandler: params.GeofenceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	organization := r.authMiddleware.RequireRole(entity.RoleOrganization)
	consumer := r.authMiddleware.RequireRole(entity.RoleConsumer)

	// The QR code is shared offline, so it stays public.
	e.GET("/events/:id/qrcode", r.eventHandler.QRCode)

	usersGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.DELETE("", r.authHandler.DeleteAccount)
		usersGroup.GET("/:userId/events", r.eventHandler.ListByOwner)
	}

	eventsGroup := e.Group("/events", r.authMiddleware.Authenticate)
	{
		eventsGroup.POST("", r.eventHandler.CreateEvent, organization)
		eventsGroup.POST("/scan", r.eventHandler.Scan, consumer)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.PUT("/:id", r.eventHandler.UpdateEvent, organization)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent, organization)
		eventsGroup.POST("/:id/collaborate", r.eventHandler.Collaborate, organization)
		eventsGroup.POST("/:id/attend", r.eventHandler.Attend, consumer)
		eventsGroup.GET("/:id/attendees", r.eventHandler.ListAttendees)
		eventsGroup.GET("/:id/collaborators", r.eventHandler.ListCollaborators)
	}

	geofencesGroup := e.Group("/geofences", r.authMiddleware.Authenticate, consumer)
	{
		geofencesGroup.POST("", r.geofenceHandler.CreateGeofence)
		geofencesGroup.GET("/:id", r.geofenceHandler.GetGeofence)
		geofencesGroup.PUT("/:id", r.geofenceHandler.UpdateGeofence)
		geofencesGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence)
		geofencesGroup.GET("/users/:userId", r.geofenceHandler.ListByUser)
	}
}
