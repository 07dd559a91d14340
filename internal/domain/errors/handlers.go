package errors

import (
	"net/http"

	"geoalert/internal/errors"
)

// FromError resolves err to the AppError it carries, falling back to ErrInternalError
func FromError(err error) AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr
	}

	return ErrInternalError
}

// IsClientError reports whether err maps to a 4xx response
func IsClientError(err error) bool {
	appErr := FromError(err)
	if appErr == nil {
		return false
	}

	return appErr.HTTPCode() >= http.StatusBadRequest && appErr.HTTPCode() < http.StatusInternalServerError
}

// Is reports whether err carries the same business error code as target
func Is(err error, target AppError) bool {
	appErr, ok := errors.AsType[AppError](err)
	if !ok {
		return false
	}

	return appErr.ErrorCode() == target.ErrorCode()
}
