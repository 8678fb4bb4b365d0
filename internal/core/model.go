package core

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Field length limits for a contact submission
const (
	MaxNameLength    = 50
	MaxSubjectLength = 100
	MaxMessageLength = 1000
)

// emailPattern is the local@domain.tld shape check applied to submissions.
// It intentionally stays loose; deliverability is the SMTP server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission represents one persisted contact-form message
type ContactSubmission struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
	IsRead    bool          `bson:"isRead" json:"is_read"`
}

// NewContactSubmission builds a submission from raw form input.
// All fields are trimmed and the email is lowercased.
func NewContactSubmission(name, email, subject, message string) *ContactSubmission {
	return &ContactSubmission{
		Name:    strings.TrimSpace(name),
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
	}
}

// Violations returns the list of field-constraint messages violated by the
// submission, or nil when the record is storable. Every persisted record
// satisfies these constraints.
func (s *ContactSubmission) Violations() []string {
	var violations []string

	if s.Name == "" {
		violations = append(violations, "Name is required")
	} else if len([]rune(s.Name)) > MaxNameLength {
		violations = append(violations, "Name cannot exceed 50 characters")
	}

	if s.Email == "" {
		violations = append(violations, "Email is required")
	} else if !emailPattern.MatchString(s.Email) {
		violations = append(violations, "Please provide a valid email")
	}

	if s.Subject == "" {
		violations = append(violations, "Subject is required")
	} else if len([]rune(s.Subject)) > MaxSubjectLength {
		violations = append(violations, "Subject cannot exceed 100 characters")
	}

	if s.Message == "" {
		violations = append(violations, "Message is required")
	} else if len([]rune(s.Message)) > MaxMessageLength {
		violations = append(violations, "Message cannot exceed 1000 characters")
	}

	return violations
}

// IsValidEmail reports whether the address matches the submission email shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
