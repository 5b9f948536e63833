package services

import (
	"errors"
	"fmt"
)

// Engine errors are operator input problems: synchronous, non-retryable,
// and always raised before any state changes.
var (
	// ErrInsufficientStock means the operation would drive a bin quantity
	// below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrLotMismatch means supplied lot quantities don't sum to the line
	// quantity, or the serial count doesn't equal it.
	ErrLotMismatch = errors.New("lot/serial quantities do not reconcile")

	// ErrNotFound means a referenced bin, item, order, count or session does
	// not exist where existence is required.
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed means the operation needs state that isn't there,
	// e.g. sequential counting without an active session.
	ErrPreconditionFailed = errors.New("precondition failed")
)

// ValidationError reports a bad quantity or missing field, rejected before
// any mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
