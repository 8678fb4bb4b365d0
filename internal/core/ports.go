package core

import (
	"context"
)

// ContactRepository defines the interface for persisting contact submissions
type ContactRepository interface {
	// Insert writes one submission and returns the persisted record,
	// including the generated ID and creation timestamp. Failures are
	// reported as *PersistenceError.
	Insert(ctx context.Context, submission *ContactSubmission) (*ContactSubmission, error)

	// Ping verifies the store is reachable
	Ping(ctx context.Context) error
}

// Notifier defines the interface for sending the operator notification about
// a persisted submission
type Notifier interface {
	// Send delivers the notification for the given submission. It must
	// fail fast with *ConfigurationError before any network I/O when the
	// channel is not configured.
	Send(ctx context.Context, submission *ContactSubmission) error
}
