package mongodb

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

func newTestRepository(t *testing.T, dial dialFunc) *Repository {
	t.Helper()
	repo, err := NewRepository(Config{
		URI:        "mongodb://localhost:27017",
		Database:   "portfolio",
		Collection: "contacts",
	}, zap.NewNop())
	require.NoError(t, err)
	repo.dial = dial
	return repo
}

func TestNewRepositoryRequiresURI(t *testing.T) {
	_, err := NewRepository(Config{}, zap.NewNop())

	var cerr *core.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "MONGODB_URI")
}

func TestInsertRejectsConstraintViolationsBeforeConnecting(t *testing.T) {
	// A deliberately unreachable URI: a constraint rejection must never
	// touch the network.
	repo, err := NewRepository(Config{
		URI:        "mongodb://unreachable.invalid:27017",
		Database:   "portfolio",
		Collection: "contacts",
	}, zap.NewNop())
	require.NoError(t, err)

	submission := core.NewContactSubmission(
		strings.Repeat("x", core.MaxNameLength+1),
		"john@example.com",
		"Hi",
		"Test",
	)

	_, err = repo.Insert(context.Background(), submission)

	var perr *core.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.IsConstraint())
	assert.Equal(t, []string{"Name cannot exceed 50 characters"}, perr.Violations)
}

func TestConnectSharesOneAttemptAcrossConcurrentCallers(t *testing.T) {
	var attempts atomic.Int32
	repo := newTestRepository(t, func(ctx context.Context) (*mongo.Client, error) {
		attempts.Add(1)
		// Hold the attempt open long enough for the other callers to
		// pile up behind it.
		time.Sleep(50 * time.Millisecond)
		return &mongo.Client{}, nil
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.connect(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), attempts.Load())
}

func TestConnectRetriesAfterFailedAttempt(t *testing.T) {
	var attempts atomic.Int32
	repo := newTestRepository(t, func(ctx context.Context) (*mongo.Client, error) {
		if attempts.Add(1) == 1 {
			return nil, errors.New("server unreachable")
		}
		return &mongo.Client{}, nil
	})

	_, err := repo.connect(context.Background())
	require.Error(t, err)

	// The failure must not be cached: the next caller dials again.
	coll, err := repo.connect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, coll)
	assert.Equal(t, int32(2), attempts.Load())

	// A third call reuses the established connection.
	_, err = repo.connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
}
