package errors

import (
	"net/http"
	"testing"

	"geoalert/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{
			name:     "wrapped base error keeps its code",
			err:      errors.Wrap(ErrForbidden, "update event"),
			wantCode: "FORBIDDEN",
			wantHTTP: http.StatusForbidden,
		},
		{
			name:     "details variant keeps its code",
			err:      ErrEventNotFound.WithDetails("event 9"),
			wantCode: "EVENT_NOT_FOUND",
			wantHTTP: http.StatusNotFound,
		},
		{
			name:     "database error is a persistence failure",
			err:      NewDatabaseExecuteError(errors.New("connection reset"), "insert event"),
			wantCode: "DATABASE_EXECUTE_FAILED",
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "unknown error becomes internal",
			err:      errors.New("boom"),
			wantCode: "INTERNAL_ERROR",
			wantHTTP: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			assert.Equal(t, tt.wantHTTP, appErr.HTTPCode())
		})
	}

	assert.Nil(t, FromError(nil))
}

func TestIsMatchesByCode(t *testing.T) {
	assert.True(t, Is(ErrAlreadyAttending.WithDetails("event 3"), ErrAlreadyAttending))
	assert.False(t, Is(ErrAlreadyAttending, ErrAlreadyCollaborating))
	assert.False(t, Is(errors.New("plain"), ErrForbidden))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrInvalidCoordinate))
	assert.True(t, IsClientError(errors.Wrap(ErrConflict, "ctx")))
	assert.False(t, IsClientError(NewDatabaseExecuteError(errors.New("x"), "")))
	assert.False(t, IsClientError(nil))
}

func TestDatabaseExecuteErrorUnwraps(t *testing.T) {
	root := errors.New("deadlock")
	err := NewDatabaseExecuteError(root, "")

	assert.True(t, errors.Is(err, root))
	assert.Contains(t, err.Error(), "database execution failed")
}
