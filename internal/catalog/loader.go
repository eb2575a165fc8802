package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Taichi-iskw/yt-player/internal/config"
	"github.com/Taichi-iskw/yt-player/internal/logger"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

// Loader produces the records a Catalog is built from
type Loader interface {
	Load(ctx context.Context) ([]*model.Video, error)
}

// VideoLister is the slice of the video repository the postgres loader needs
type VideoLister interface {
	ListAll(ctx context.Context) ([]*model.Video, error)
}

// RepositoryLoader loads the catalog from the videos table
type RepositoryLoader struct {
	repo VideoLister
}

// NewRepositoryLoader creates a loader backed by the video repository
func NewRepositoryLoader(repo VideoLister) *RepositoryLoader {
	return &RepositoryLoader{repo: repo}
}

// Load implements Loader
func (l *RepositoryLoader) Load(ctx context.Context) ([]*model.Video, error) {
	return l.repo.ListAll(ctx)
}

// NewLoader selects the loader for the configured catalog source.
// repo is only used for the postgres source and may be nil otherwise.
func NewLoader(cfg *config.Config, repo VideoLister) (Loader, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return NewFileLoader(cfg.Catalog.Path), nil
	case config.SourcePostgres:
		if repo == nil {
			return nil, fmt.Errorf("postgres catalog source requires a video repository")
		}
		return NewRepositoryLoader(repo), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Catalog.Source)
	}
}

// Load runs loader and builds a Catalog from its records
func Load(ctx context.Context, loader Loader, log logger.Logger) (*Catalog, error) {
	start := time.Now()

	videos, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c, err := New(videos)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	log.With("loader", fmt.Sprintf("%T", loader), "videos", c.Len(), "elapsed", time.Since(start)).Info("catalog loaded")
	return c, nil
}
