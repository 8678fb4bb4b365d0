package core

import (
	"fmt"
	"strings"
)

// ValidationError reports client-caused input problems. The request can be
// retried with corrected input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NewValidationError creates a validation error from one or more messages
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// ConfigurationError reports operator-caused problems: missing connection
// string, missing SMTP credentials or notification recipient.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError reports a failed insert. Violations is non-empty when the
// store rejected the record on field constraints (a client error); otherwise
// the failure is transport-level (a server error).
type PersistenceError struct {
	Violations []string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.IsConstraint() {
		return strings.Join(e.Violations, ", ")
	}
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsConstraint reports whether the failure was a field-constraint rejection
// rather than a transport failure.
func (e *PersistenceError) IsConstraint() bool {
	return len(e.Violations) > 0
}

// NotificationError reports a failed operator notification. It never affects
// the outcome of the submission that triggered it.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
