package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		CodeServiceUnavailable,
		"Data store is temporarily unavailable, please retry",
		http.StatusServiceUnavailable,
	)
)

// RequiredField reports a missing mandatory field.
func RequiredField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    field + " is required",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]string{"field": field},
	}
}

// InvalidField reports a field whose value could not be accepted.
func InvalidField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    field + " is invalid",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]string{"field": field},
	}
}

// Transient wraps a connectivity or timeout failure from the store.
// Callers may retry with backoff.
func Transient(err error) *AppError {
	return Wrap(err, ErrStoreUnavailable.Code, ErrStoreUnavailable.Message, ErrStoreUnavailable.HTTPStatus)
}

// IsTransient reports whether err is a retryable store failure.
func IsTransient(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == CodeServiceUnavailable
	}
	return false
}
