// services/errors.go
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups of entities that do not exist. Handlers map
// it to a 404 response.
var ErrNotFound = errors.New("not found")

// ValidationError is a field-level rejection of a write. Handlers map it
// to a 400 response keyed by Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
