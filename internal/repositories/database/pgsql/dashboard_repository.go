package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/vidtube/vidtube_backend/internal/utils/mapping"
)

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(v.views) FROM videos v WHERE v.owner_id = $1 AND v.deleted_at IS NULL), 0) AS total_views,
			(SELECT COUNT(*) FROM videos v WHERE v.owner_id = $1 AND v.deleted_at IS NULL) AS total_videos,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = $1) AS total_subscribers,
			(SELECT COUNT(*)
				FROM likes l
				JOIN videos v ON v.video_id = l.video_id AND v.deleted_at IS NULL
				WHERE v.owner_id = $1) AS total_likes;
	`
	var stats domain.ChannelStats
	err := r.Pool.QueryRow(ctx, query, channelID).Scan(
		&stats.TotalViews,
		&stats.TotalVideos,
		&stats.TotalSubscribers,
		&stats.TotalLikes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel stats: %w", err)
	}
	return &stats, nil
}

func (r *PgxDashboardRepository) ListChannelVideos(ctx context.Context, channelID string, limit int, offset int) ([]domain.Video, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, channelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		var m models.Video
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
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel video row: %w", err)
		}
		videos = append(videos, mapping.ToDomainVideo(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating channel video rows: %w", rows.Err())
	}

	return videos, nil
}
