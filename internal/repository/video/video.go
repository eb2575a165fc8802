package video

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Taichi-iskw/yt-player/internal/model"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Close()
}

// Repository defines operations for catalog video persistence
type Repository interface {
	// Create creates a new video record
	Create(ctx context.Context, video *model.Video) error

	// CreateBatch creates multiple video records using COPY FROM
	CreateBatch(ctx context.Context, videos []*model.Video) error

	// GetByID retrieves a video by its ID
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// List retrieves videos ordered by ID with pagination
	List(ctx context.Context, limit, offset int) ([]*model.Video, error)

	// ListAll retrieves every video in the catalog
	ListAll(ctx context.Context) ([]*model.Video, error)

	// Delete deletes a video by its ID
	Delete(ctx context.Context, id string) error
}
