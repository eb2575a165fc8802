package player

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/yt-player/internal/catalog"
	"github.com/Taichi-iskw/yt-player/internal/config"
	"github.com/Taichi-iskw/yt-player/internal/logger"
	"github.com/Taichi-iskw/yt-player/internal/repository/video"
	"github.com/Taichi-iskw/yt-player/internal/service/player"
)

// ServiceFactory creates player service instances from the configuration
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// LoadConfig loads the configuration and builds the logger.
// A non-empty catalogPath selects that file as the catalog source.
func (f *ServiceFactory) LoadConfig(catalogPath string) (*config.Config, logger.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if catalogPath != "" {
		cfg.Catalog.Source = config.SourceFile
		cfg.Catalog.Path = catalogPath
	}

	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	return cfg, log, nil
}

// LoadCatalog loads the catalog from the configured source
func (f *ServiceFactory) LoadCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (*catalog.Catalog, error) {
	var repo catalog.VideoLister
	if cfg.Catalog.Source == config.SourcePostgres {
		dbPool, err := config.NewDatabasePool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		// the catalog is read once, so the pool does not outlive the load
		defer dbPool.Close()
		repo = video.NewRepository(dbPool)
	}

	loader, err := catalog.NewLoader(cfg, repo)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, loader, log)
}

// CreateService loads the catalog and creates a player over it
func (f *ServiceFactory) CreateService(ctx context.Context, catalogPath string) (player.Service, logger.Logger, error) {
	cfg, log, err := f.LoadConfig(catalogPath)
	if err != nil {
		return nil, nil, err
	}

	c, err := f.LoadCatalog(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return player.NewService(c), log, nil
}
