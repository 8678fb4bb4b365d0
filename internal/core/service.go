package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// SubmissionInput is the raw contact-form input before any normalization
type SubmissionInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmissionResult separates the overall outcome of a submission from the
// best-effort notification side channel. Once a record is persisted the
// submission is successful regardless of the notification outcome.
type SubmissionResult struct {
	Submission      *ContactSubmission
	Notified        bool
	NotificationErr error
}

// ContactService is the core service for the contact-submission pipeline:
// validate, persist, then notify.
type ContactService struct {
	repo     ContactRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, notifier Notifier, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit runs the pipeline for one form submission. Validation and
// persistence failures are returned as the operation's error; a notification
// failure is recorded on the result and logged, never returned.
func (s *ContactService) Submit(ctx context.Context, input SubmissionInput) (*SubmissionResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	submission := NewContactSubmission(input.Name, input.Email, input.Subject, input.Message)

	saved, err := s.repo.Insert(ctx, submission)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Contact submission persisted",
		zap.String("id", saved.ID.Hex()),
		zap.String("email", saved.Email))

	result := &SubmissionResult{Submission: saved}

	if err := s.notifier.Send(ctx, saved); err != nil {
		// Best-effort: the user-facing contract is "your message was
		// saved", independent of the operator email.
		result.NotificationErr = &NotificationError{Err: err}
		s.logger.Error("Failed to send contact notification",
			zap.String("id", saved.ID.Hex()),
			zap.Error(err))
		return result, nil
	}

	result.Notified = true
	return result, nil
}

// validateInput performs the synchronous request-level checks. No I/O.
func validateInput(input SubmissionInput) error {
	if isBlank(input.Name) || isBlank(input.Email) || isBlank(input.Subject) || isBlank(input.Message) {
		return NewValidationError("All fields are required")
	}
	if !IsValidEmail(strings.TrimSpace(input.Email)) {
		return NewValidationError("Please provide a valid email address")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
