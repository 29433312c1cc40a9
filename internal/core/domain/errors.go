package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrForbidden          = errors.New("access denied")
	ErrUserNotRegistered  = errors.New("User not registered. Please check your email or contact administrator.")
	ErrInvalidCredentials = errors.New("Invalid email or password. Please try again.")
	ErrEmailTaken         = errors.New("An account with this email already exists.")
	ErrTermsNotAccepted   = errors.New("Please agree to the Terms of Service and Privacy Policy.")
	ErrNoExportData       = errors.New("No bike maintenance records available to export!")
	ErrNoVehiclesForCity  = errors.New("No bikes registered for this city.")
	ErrSubmitFailed       = errors.New("Failed to submit form. Please try again.")
	ErrUnknownActivity    = errors.New("unknown activity event")
	ErrInvalidSortColumn  = errors.New("invalid sort column")
	ErrSessionExpired     = errors.New("session expired")
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}
