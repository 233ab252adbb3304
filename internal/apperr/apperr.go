// Package apperr defines the request-terminal error taxonomy shared by the
// workflows and the HTTP layer. Every category maps to exactly one status;
// nothing here is ever retried.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
)

var statusMap = map[error]int{
	ErrValidation: http.StatusBadRequest,
	ErrConflict:   http.StatusBadRequest,
	ErrForbidden:  http.StatusForbidden,
	ErrNotFound:   http.StatusNotFound,
	ErrInternal:   http.StatusInternalServerError,
}

// Validation wraps ErrValidation with a user-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

func Forbidden(msg string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, msg)
}

func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// Internal wraps an unexpected store or IO failure. The cause stays in the
// chain for logging; the client only ever sees the category.
func Internal(cause error) error {
	return fmt.Errorf("%w: %v", ErrInternal, cause)
}

// Status maps an error to its HTTP status. Unclassified errors are treated as
// internal.
func Status(err error) int {
	for sentinel, code := range statusMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing text for err: the part after the category
// prefix, or a generic message for internal and unclassified errors.
func Message(err error) string {
	if errors.Is(err, ErrInternal) || Status(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	msg := err.Error()
	for sentinel := range statusMap {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
