package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/adapters/memory"
	"github.com/silambarasu-a/portfolio-backend/internal/config"
	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

// nopNotifier always succeeds
type nopNotifier struct{}

func (nopNotifier) Send(ctx context.Context, s *core.ContactSubmission) error { return nil }

func newTestRouter(t *testing.T, repo core.ContactRepository) http.Handler {
	t.Helper()

	v := viper.New()
	v.SetDefault("server.max_body_size", 64*1024)
	v.SetDefault("server.rate_limit_rps", 100.0)
	v.SetDefault("server.rate_limit_burst", 100)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	cfg := config.NewFromViper(v)

	svc := core.NewContactService(repo, nopNotifier{}, zap.NewNop())
	handler := NewContactHandler(svc, testMetrics, zap.NewNop())

	return NewRouter(RouterDependencies{
		Config:         cfg,
		Logger:         zap.NewNop(),
		Metrics:        testMetrics,
		ContactHandler: handler,
		Repository:     repo,
	})
}

func TestRouterEndToEndSubmission(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"John Doe","email":"JOHN@EXAMPLE.COM","subject":"Hi","message":"Test"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	stored := repo.All()
	require.Len(t, stored, 1)
	assert.Equal(t, "john@example.com", stored[0].Email)
	assert.False(t, stored[0].ID.IsZero())
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t, memory.NewRepository(zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter(t, memory.NewRepository(zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contact_submissions_total")
}

func TestRouterBodyLimit(t *testing.T) {
	router := newTestRouter(t, memory.NewRepository(zap.NewNop()))

	big := strings.Repeat("x", 65*1024)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouterBodyLimitWithoutContentLength(t *testing.T) {
	router := newTestRouter(t, memory.NewRepository(zap.NewNop()))

	// Wrap the reader so httptest cannot derive a Content-Length; the
	// cap must still hold on the read path.
	big := strings.Repeat("x", 65*1024)
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		io.MultiReader(strings.NewReader(big)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(1.0, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Other clients keep their own budget
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(1.0, 1)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")

	// Age one bucket past the TTL and force the next call to sweep
	limiter.mu.Lock()
	limiter.visitors["10.0.0.1"].lastSeen = time.Now().Add(-visitorTTL - time.Minute)
	limiter.lastSweep = time.Now().Add(-sweepInterval - time.Second)
	limiter.mu.Unlock()

	limiter.Allow("10.0.0.3")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.visitors, "10.0.0.1")
	assert.Contains(t, limiter.visitors, "10.0.0.2")
	assert.Contains(t, limiter.visitors, "10.0.0.3")
}
