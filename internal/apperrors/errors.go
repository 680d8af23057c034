package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation conflicts with the current state
// of a resource (e.g. selling an item that is already sold, or moving a
// check instrument out of a terminal status).
var ErrConflict = errors.New("resource state conflict")

// ErrConsistency indicates an internal invariant was violated (e.g. the
// denormalized account balance diverged from the latest ledger entry).
// Should be unreachable; checked defensively.
var ErrConsistency = errors.New("internal consistency violation")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human-readable message. Repositories use it for storage-level failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
