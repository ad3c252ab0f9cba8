package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("access denied")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrServer         = errors.New("server error")
)

// Error carries the backend's structured error envelope. Is matches the
// sentinel for the HTTP status class so callers can branch with
// errors.Is without string checks.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http status %d", e.Status)
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrServer
	}
}

// Retriable reports whether an operation may be retried without user
// intervention: server-side failures and timeouts, never client errors.
func Retriable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	// transport-level failures (refused, reset, timeout) are retriable
	return err != nil && !errors.Is(err, ErrUnauthorized)
}
