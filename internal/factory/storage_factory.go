package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/adapters/memory"
	"github.com/silambarasu-a/portfolio-backend/internal/adapters/mongodb"
	"github.com/silambarasu-a/portfolio-backend/internal/config"
	"github.com/silambarasu-a/portfolio-backend/internal/core"
)

// StorageFactory creates contact repositories based on configuration
type StorageFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config, logger *zap.Logger) *StorageFactory {
	return &StorageFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateContactRepository creates a contact repository based on the configuration
func (f *StorageFactory) CreateContactRepository() (core.ContactRepository, error) {
	storageType := f.cfg.GetString("storage.type")

	switch storageType {
	case "mongodb":
		connectTimeout, err := f.cfg.GetDuration("storage.connect_timeout")
		if err != nil {
			return nil, fmt.Errorf("invalid storage connect timeout: %w", err)
		}
		return mongodb.NewRepository(mongodb.Config{
			URI:            f.cfg.GetString("storage.mongodb_uri"),
			Database:       f.cfg.GetString("storage.database"),
			Collection:     f.cfg.GetString("storage.collection"),
			ConnectTimeout: connectTimeout,
			MaxPoolSize:    maxPoolSize(f.cfg.GetInt("storage.max_pool_size")),
		}, f.logger)
	case "memory":
		return memory.NewRepository(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}

// maxPoolSize converts the configured pool size for the driver. A negative
// value would wrap around to an enormous unsigned pool, so it collapses to
// zero and leaves the driver default in place.
func maxPoolSize(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
