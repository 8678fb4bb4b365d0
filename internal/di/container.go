package di

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/adapters/httpapi"
	"github.com/silambarasu-a/portfolio-backend/internal/config"
	"github.com/silambarasu-a/portfolio-backend/internal/core"
	"github.com/silambarasu-a/portfolio-backend/internal/factory"
	"github.com/silambarasu-a/portfolio-backend/internal/logging"
	"github.com/silambarasu-a/portfolio-backend/internal/monitoring"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register metrics
	if err := container.Provide(monitoring.NewMetrics); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewStorageFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNotifierFactory); err != nil {
		return nil, err
	}

	// Register contact repository
	if err := container.Provide(func(f *factory.StorageFactory) (core.ContactRepository, error) {
		return f.CreateContactRepository()
	}); err != nil {
		return nil, err
	}

	// Register notifier
	if err := container.Provide(func(f *factory.NotifierFactory) core.Notifier {
		return f.CreateNotifier()
	}); err != nil {
		return nil, err
	}

	// Register contact service
	if err := container.Provide(core.NewContactService); err != nil {
		return nil, err
	}

	// Register HTTP handler
	if err := container.Provide(func(svc *core.ContactService, m *monitoring.Metrics, logger *zap.Logger) *httpapi.ContactHandler {
		return httpapi.NewContactHandler(svc, m, logger)
	}); err != nil {
		return nil, err
	}

	// Register router
	if err := container.Provide(func(
		cfg *config.Config,
		logger *zap.Logger,
		m *monitoring.Metrics,
		handler *httpapi.ContactHandler,
		repo core.ContactRepository,
	) *gin.Engine {
		return httpapi.NewRouter(httpapi.RouterDependencies{
			Config:         cfg,
			Logger:         logger,
			Metrics:        m,
			ContactHandler: handler,
			Repository:     repo,
		})
	}); err != nil {
		return nil, err
	}

	return container, nil
}
