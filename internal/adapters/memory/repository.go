package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

// Repository is an in-memory implementation of the core.ContactRepository
// interface, used for local development and tests. It enforces the same
// field constraints the document store does.
type Repository struct {
	mu          sync.RWMutex
	submissions []*core.ContactSubmission
	logger      *zap.Logger
}

// NewRepository creates a new in-memory contact repository
func NewRepository(logger *zap.Logger) *Repository {
	return &Repository{logger: logger}
}

// Ensure Repository implements core.ContactRepository at compile time
var _ core.ContactRepository = (*Repository)(nil)

// Insert stores one submission and returns it with a generated ID
func (r *Repository) Insert(ctx context.Context, submission *core.ContactSubmission) (*core.ContactSubmission, error) {
	if violations := submission.Violations(); violations != nil {
		return nil, &core.PersistenceError{Violations: violations}
	}

	saved := *submission
	saved.ID = bson.NewObjectID()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.submissions = append(r.submissions, &saved)
	r.mu.Unlock()

	r.logger.Debug("Stored contact submission in memory",
		zap.String("id", saved.ID.Hex()))
	return &saved, nil
}

// Ping always succeeds; memory is always reachable
func (r *Repository) Ping(ctx context.Context) error {
	return nil
}

// All returns a snapshot of every stored submission, oldest first
func (r *Repository) All() []*core.ContactSubmission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*core.ContactSubmission, len(r.submissions))
	copy(out, r.submissions)
	return out
}
