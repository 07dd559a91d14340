package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/constants"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = constants.ContextKeyUserID
	contextKeyRole   = constants.ContextKeyRole

	bearerPrefix = "Bearer "
)

// AuthMiddleware validates bearer access tokens and gates routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if claims.UserID <= 0 || !role.IsValid() {
			return domainerrors.ErrUnauthorized.WithDetails("token does not identify a user")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRole, role)

		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			logger = logger.With(slog.Int64("user_id", claims.UserID), slog.String("role", role.String()))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), logger)))
		}

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if caller.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(contextKeyUserID).(int64)

	return userID, ok
}

// GetCaller returns the authenticated identity set by Authenticate.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return entity.Caller{}, false
	}

	role, ok := c.Get(contextKeyRole).(entity.Role)
	if !ok {
		return entity.Caller{}, false
	}

	return entity.Caller{UserID: userID, Role: role}, true
}
