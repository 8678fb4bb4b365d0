package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

// documentValidationFailure is the server error code MongoDB returns when a
// write violates the collection's JSON schema.
const documentValidationFailure = 121

// Config holds the connection settings for the document store
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// dialFunc establishes and verifies the client connection. Tests substitute
// it to avoid dialing.
type dialFunc func(ctx context.Context) (*mongo.Client, error)

// Repository is a MongoDB implementation of the core.ContactRepository
// interface. The underlying client is established lazily on first use and
// reused for the process lifetime; concurrent first callers share a single
// in-flight connection attempt.
type Repository struct {
	cfg    Config
	logger *zap.Logger

	connectGroup singleflight.Group
	mu           sync.RWMutex
	client       *mongo.Client
	collection   *mongo.Collection

	dial dialFunc
}

// NewRepository creates a MongoDB contact repository. It fails when the
// connection string is absent; that is a startup invariant, not a per-request
// condition.
func NewRepository(cfg Config, logger *zap.Logger) (*Repository, error) {
	if cfg.URI == "" {
		return nil, core.NewConfigurationError("Please define the MONGODB_URI environment variable")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	r := &Repository{
		cfg:    cfg,
		logger: logger,
	}
	r.dial = r.dialServer
	return r, nil
}

// Ensure Repository implements core.ContactRepository at compile time
var _ core.ContactRepository = (*Repository)(nil)

// connect returns the cached collection handle, establishing the client on
// first use. Callers racing on the first connection share one attempt; a
// failed attempt is not cached, so a later call retries.
func (r *Repository) connect(ctx context.Context) (*mongo.Collection, error) {
	r.mu.RLock()
	if coll := r.collection; coll != nil {
		r.mu.RUnlock()
		return coll, nil
	}
	r.mu.RUnlock()

	_, err, _ := r.connectGroup.Do("connect", func() (any, error) {
		// Re-check: another caller may have finished while this one
		// waited on the group.
		r.mu.RLock()
		connected := r.collection != nil
		r.mu.RUnlock()
		if connected {
			return nil, nil
		}

		client, err := r.dial(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.client = client
		r.collection = client.Database(r.cfg.Database).Collection(r.cfg.Collection)
		r.mu.Unlock()

		r.logger.Info("Connected to MongoDB",
			zap.String("database", r.cfg.Database),
			zap.String("collection", r.cfg.Collection))
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collection, nil
}

// dialServer is the production connection path: create the client, then ping
// to verify the server is actually reachable.
func (r *Repository) dialServer(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(r.cfg.URI).
		SetConnectTimeout(r.cfg.ConnectTimeout)
	if r.cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(r.cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, r.cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongo server: %w", err)
	}
	return client, nil
}

// Insert writes one contact submission and returns the persisted record with
// the generated ID. Field-constraint failures are reported with the full list
// of violated-field messages; everything else is a transport failure.
func (r *Repository) Insert(ctx context.Context, submission *core.ContactSubmission) (*core.ContactSubmission, error) {
	if violations := submission.Violations(); violations != nil {
		return nil, &core.PersistenceError{Violations: violations}
	}

	coll, err := r.connect(ctx)
	if err != nil {
		return nil, &core.PersistenceError{Err: err}
	}

	saved := *submission
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}

	result, err := coll.InsertOne(ctx, &saved)
	if err != nil {
		return nil, classifyWriteError(err)
	}

	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		saved.ID = id
	}
	return &saved, nil
}

// Ping verifies connectivity for health checks
func (r *Repository) Ping(ctx context.Context) error {
	r.mu.RLock()
	client := r.client
	r.mu.RUnlock()

	if client == nil {
		// Not connected yet; establish the connection so the probe is
		// meaningful.
		if _, err := r.connect(ctx); err != nil {
			return err
		}
		r.mu.RLock()
		client = r.client
		r.mu.RUnlock()
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client if a connection was established
func (r *Repository) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil {
		return nil
	}
	err := r.client.Disconnect(ctx)
	r.client = nil
	r.collection = nil
	return err
}

// classifyWriteError maps driver errors onto the persistence taxonomy:
// schema-validation rejections are constraint failures, anything else is
// transport-level.
func classifyWriteError(err error) *core.PersistenceError {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(documentValidationFailure) {
		return &core.PersistenceError{
			Violations: []string{"Document failed collection validation"},
			Err:        err,
		}
	}
	return &core.PersistenceError{Err: err}
}
