package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/vidtube/vidtube_backend/internal/utils/mapping"
)

const videoColumns = `video_id, owner_id, title, description, video_url, thumbnail_url,
	duration_seconds, views, is_published, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepositoryFacade {
	return &PgxVideoRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepositoryFacade = (*PgxVideoRepository)(nil)

// sortColumns maps the public sort keys to their column expressions.
// Listing queries only interpolate values from this map.
var sortColumns = map[string]string{
	"createdAt":       "v.created_at",
	"views":           "v.views",
	"durationSeconds": "v.duration_seconds",
}

func scanVideoRow(row pgx.Row) (*models.Video, error) {
	var m models.Video
	err := row.Scan(
		&m.VideoID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.VideoURL,
		&m.ThumbnailURL,
		&m.DurationSeconds,
		&m.Views,
		&m.IsPublished,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE video_id = $1 AND deleted_at IS NULL;`
	m, err := scanVideoRow(r.Pool.QueryRow(ctx, query, videoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}
	v := mapping.ToDomainVideo(*m)
	return &v, nil
}

func (r *PgxVideoRepository) FindVideoWithOwner(ctx context.Context, videoID string) (*domain.VideoWithOwner, error) {
	query := `
		SELECT v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
			v.duration_seconds, v.views, v.is_published,
			v.created_at, v.created_by, v.last_updated_at, v.last_updated_by, v.deleted_at,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM videos v
		JOIN users u ON u.user_id = v.owner_id
		WHERE v.video_id = $1 AND v.deleted_at IS NULL;
	`
	var m models.Video
	var owner domain.OwnerSummary
	err := r.Pool.QueryRow(ctx, query, videoID).Scan(
		&m.VideoID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.VideoURL,
		&m.ThumbnailURL,
		&m.DurationSeconds,
		&m.Views,
		&m.IsPublished,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&owner.UserID,
		&owner.Username,
		&owner.FullName,
		&owner.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video with owner %s: %w", videoID, err)
	}
	return &domain.VideoWithOwner{Video: mapping.ToDomainVideo(m), Owner: owner}, nil
}

func (r *PgxVideoRepository) ListVideos(ctx context.Context, q domain.VideoListQuery) ([]domain.VideoWithOwner, int64, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	where := `v.deleted_at IS NULL`
	args := []any{}
	if q.OnlyPublished {
		where += ` AND v.is_published = TRUE`
	}
	if q.Query != "" {
		args = append(args, "%"+q.Query+"%")
		where += fmt.Sprintf(` AND (v.title ILIKE $%d OR v.description ILIKE $%d)`, len(args), len(args))
	}
	if q.OwnerID != "" {
		args = append(args, q.OwnerID)
		where += fmt.Sprintf(` AND v.owner_id = $%d`, len(args))
	}

	countQuery := `SELECT COUNT(*) FROM videos v WHERE ` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	orderCol, ok := sortColumns[q.SortBy]
	if !ok {
		orderCol = "v.created_at"
	}
	direction := "DESC"
	if q.SortAsc {
		direction = "ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
			v.duration_seconds, v.views, v.is_published,
			v.created_at, v.created_by, v.last_updated_at, v.last_updated_by, v.deleted_at,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM videos v
		JOIN users u ON u.user_id = v.owner_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d;
	`, where, orderCol, direction, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.VideoWithOwner{}
	for rows.Next() {
		var m models.Video
		var owner domain.OwnerSummary
		err := rows.Scan(
			&m.VideoID,
			&m.OwnerID,
			&m.Title,
			&m.Description,
			&m.VideoURL,
			&m.ThumbnailURL,
			&m.DurationSeconds,
			&m.Views,
			&m.IsPublished,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
			&owner.UserID,
			&owner.Username,
			&owner.FullName,
			&owner.AvatarURL,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, domain.VideoWithOwner{Video: mapping.ToDomainVideo(m), Owner: owner})
	}

	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating video rows: %w", rows.Err())
	}

	return videos, total, nil
}

func (r *PgxVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	m := mapping.ToModelVideo(video)
	query := `
		INSERT INTO videos (` + videoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VideoID,
		m.OwnerID,
		m.Title,
		m.Description,
		m.VideoURL,
		m.ThumbnailURL,
		m.DurationSeconds,
		m.Views,
		m.IsPublished,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save video: %w", err)
	}
	return nil
}

func (r *PgxVideoRepository) UpdateVideo(ctx context.Context, video domain.Video) error {
	m := mapping.ToModelVideo(video)
	query := `
		UPDATE videos
		SET title = $1, description = $2, thumbnail_url = $3, last_updated_at = $4, last_updated_by = $5
		WHERE video_id = $6 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Description,
		m.ThumbnailURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VideoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVideoRepository) SetPublishStatus(ctx context.Context, videoID string, isPublished bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE videos
		SET is_published = $1, last_updated_at = $2, last_updated_by = $3
		WHERE video_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, isPublished, updatedAt, updatedBy, videoID)
	if err != nil {
		return fmt.Errorf("failed to set publish status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	query := `UPDATE videos SET views = views + 1 WHERE video_id = $1 AND deleted_at IS NULL;`
	if _, err := r.Pool.Exec(ctx, query, videoID); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (r *PgxVideoRepository) MarkVideoDeleted(ctx context.Context, videoID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE videos
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE video_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, videoID)
	if err != nil {
		return fmt.Errorf("failed to mark video as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
