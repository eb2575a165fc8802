package video

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

const selectColumns = "SELECT id, title, tags FROM videos"

// videoRepository implements Repository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &videoRepository{
		pool: pool,
	}
}

// Create creates a new video record
func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	sql := "INSERT INTO videos (id, title, tags) VALUES ($1, $2, $3)"
	_, err := r.pool.Exec(ctx, sql, video.ID, video.Title, tagsOrEmpty(video.Tags))
	if err != nil {
		return handlePostgreSQLError(err, "failed to create video")
	}
	return nil
}

// CreateBatch creates multiple video records using bulk insert (COPY FROM)
func (r *videoRepository) CreateBatch(ctx context.Context, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	rows := make([][]any, len(videos))
	for i, video := range videos {
		rows[i] = []any{video.ID, video.Title, tagsOrEmpty(video.Tags)}
	}

	tableName := pgx.Identifier{"videos"}
	columnNames := []string{"id", "title", "tags"}

	_, err := r.pool.CopyFrom(ctx, tableName, columnNames, pgx.CopyFromRows(rows))
	if err != nil {
		return handlePostgreSQLError(err, "failed to create videos in batch using COPY FROM")
	}

	return nil
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	row := r.pool.QueryRow(ctx, selectColumns+" WHERE id = $1", id)

	var video model.Video
	if err := row.Scan(&video.ID, &video.Title, &video.Tags); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video not found")
		}
		return nil, handlePostgreSQLError(err, "failed to get video")
	}

	return &video, nil
}

// List retrieves videos ordered by ID with pagination
func (r *videoRepository) List(ctx context.Context, limit, offset int) ([]*model.Video, error) {
	rows, err := r.pool.Query(ctx, selectColumns+" ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list videos")
	}
	return scanVideos(rows)
}

// ListAll retrieves every video in the catalog
func (r *videoRepository) ListAll(ctx context.Context) ([]*model.Video, error) {
	rows, err := r.pool.Query(ctx, selectColumns+" ORDER BY id")
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list videos")
	}
	return scanVideos(rows)
}

// Delete deletes a video by its ID
func (r *videoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete video")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "video not found")
	}
	return nil
}

func scanVideos(rows pgx.Rows) ([]*model.Video, error) {
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		var video model.Video
		if err := rows.Scan(&video.ID, &video.Title, &video.Tags); err != nil {
			return nil, handlePostgreSQLError(err, "failed to scan video row")
		}
		videos = append(videos, &video)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate video rows")
	}

	return videos, nil
}

// tagsOrEmpty keeps NULL out of the NOT NULL tags column
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
