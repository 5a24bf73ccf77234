package utils

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the service packages. Cross-owner access is
// reported as ErrNotFound so callers cannot probe for other users' data.
var (
	ErrNotFound       = errors.New("record not found")
	ErrEmailTaken     = errors.New("email already in use")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrUnauthorized   = errors.New("unauthorized")
)

// ValidationError marks a request rejected for missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}
