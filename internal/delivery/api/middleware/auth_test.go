package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"
	mockService "geoalert/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *mockService.MockTokenService)
		wantCaller *entity.Caller
	}{
		{
			name:   "missing header",
			header: "",
		},
		{
			name:   "not a bearer token",
			header: "Basic abc",
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()
			},
		},
		{
			name:   "unknown role",
			header: "Bearer admin",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: 3, Role: "admin"}, nil).Once()
			},
		},
		{
			name:   "valid consumer token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7, Role: "consumer"}, nil).Once()
			},
			wantCaller: &entity.Caller{UserID: 7, Role: entity.RoleConsumer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			var seen *entity.Caller
			next := func(c echo.Context) error {
				caller, ok := GetCaller(c)
				require.True(t, ok)
				seen = &caller

				return c.NoContent(http.StatusNoContent)
			}

			c, _ := newAuthContext(tt.header)
			err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

			if tt.wantCaller == nil {
				assert.True(t, domainerrors.Is(err, domainerrors.ErrUnauthorized))
				assert.Nil(t, seen)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCaller, seen)
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	handler := m.RequireRole(entity.RoleOrganization)(next)

	t.Run("no caller", func(t *testing.T) {
		c, _ := newAuthContext("")
		assert.True(t, domainerrors.Is(handler(c), domainerrors.ErrUnauthorized))
	})

	t.Run("wrong role", func(t *testing.T) {
		c, _ := newAuthContext("")
		c.Set(contextKeyUserID, int64(2))
		c.Set(contextKeyRole, entity.RoleConsumer)
		assert.True(t, domainerrors.Is(handler(c), domainerrors.ErrForbidden))
	})

	t.Run("matching role", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyUserID, int64(1))
		c.Set(contextKeyRole, entity.RoleOrganization)
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
