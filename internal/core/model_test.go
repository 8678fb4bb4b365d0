package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolationsValid(t *testing.T) {
	s := NewContactSubmission("John Doe", "john@example.com", "Hi", "Test")
	assert.Nil(t, s.Violations())
}

func TestViolationsLengthLimits(t *testing.T) {
	tests := []struct {
		name       string
		submission *ContactSubmission
		want       string
	}{
		{
			name:       "name too long",
			submission: NewContactSubmission(strings.Repeat("a", MaxNameLength+1), "a@b.co", "s", "m"),
			want:       "Name cannot exceed 50 characters",
		},
		{
			name:       "subject too long",
			submission: NewContactSubmission("n", "a@b.co", strings.Repeat("s", MaxSubjectLength+1), "m"),
			want:       "Subject cannot exceed 100 characters",
		},
		{
			name:       "message too long",
			submission: NewContactSubmission("n", "a@b.co", "s", strings.Repeat("m", MaxMessageLength+1)),
			want:       "Message cannot exceed 1000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := tt.submission.Violations()
			assert.Equal(t, []string{tt.want}, violations)
		})
	}
}

func TestViolationsAtLimitIsValid(t *testing.T) {
	s := NewContactSubmission(
		strings.Repeat("a", MaxNameLength),
		"a@b.co",
		strings.Repeat("s", MaxSubjectLength),
		strings.Repeat("m", MaxMessageLength),
	)
	assert.Nil(t, s.Violations())
}

func TestViolationsAggregated(t *testing.T) {
	s := &ContactSubmission{}
	violations := s.Violations()
	assert.Equal(t, []string{
		"Name is required",
		"Email is required",
		"Subject is required",
		"Message is required",
	}, violations)
}

func TestViolationsBadEmail(t *testing.T) {
	s := NewContactSubmission("n", "not-an-email", "s", "m")
	assert.Equal(t, []string{"Please provide a valid email"}, s.Violations())
}
