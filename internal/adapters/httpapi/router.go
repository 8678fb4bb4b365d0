package httpapi

import (
	"context"
	"net/http"
	"time"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/config"
	"github.com/silambarasu-a/portfolio-backend/internal/core"
	"github.com/silambarasu-a/portfolio-backend/internal/monitoring"
)

// RouterDependencies carries everything the router needs
type RouterDependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	Metrics        *monitoring.Metrics
	ContactHandler *ContactHandler
	Repository     core.ContactRepository
}

// NewRouter creates the gin engine with the middleware stack and routes
func NewRouter(deps RouterDependencies) *gin.Engine {
	if deps.Config.GetString("logging.level") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery(deps.Logger))
	router.Use(RequestLogger(deps.Logger))
	router.Use(MetricsMiddleware(deps.Metrics))
	router.Use(BodySizeLimit(int64(deps.Config.GetInt("server.max_body_size"))))

	corsConfig := gincors.Config{
		AllowOrigins:     deps.Config.GetStringSlice("server.cors_allowed_origins"),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// Wildcard origins cannot be combined with credentials
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			corsConfig.AllowCredentials = false
			break
		}
	}
	router.Use(gincors.New(corsConfig))

	limiter := NewIPRateLimiter(
		deps.Config.GetFloat64("server.rate_limit_rps"),
		deps.Config.GetInt("server.rate_limit_burst"),
	)

	api := router.Group("/api")
	api.POST("/contact", RateLimit(limiter), deps.ContactHandler.Submit)

	router.GET("/healthz", healthHandler(deps.Repository))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	return router
}

// healthHandler reports whether the document store is reachable
func healthHandler(repo core.ContactRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
