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

type PgxPlaylistRepository struct {
	BaseRepository
}

func newPgxPlaylistRepository(db *pgxpool.Pool) portsrepo.PlaylistRepositoryFacade {
	return &PgxPlaylistRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PlaylistRepositoryFacade = (*PgxPlaylistRepository)(nil)

func (r *PgxPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	query := `
		SELECT playlist_id, owner_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM playlists
		WHERE playlist_id = $1;
	`
	var m models.Playlist
	err := r.Pool.QueryRow(ctx, query, playlistID).Scan(
		&m.PlaylistID,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find playlist by ID %s: %w", playlistID, err)
	}
	p := mapping.ToDomainPlaylist(m)
	return &p, nil
}

func (r *PgxPlaylistRepository) FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.PlaylistWithVideos, error) {
	headerQuery := `
		SELECT p.playlist_id, p.owner_id, p.name, p.description,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM playlists p
		JOIN users u ON u.user_id = p.owner_id
		WHERE p.playlist_id = $1;
	`
	var m models.Playlist
	var owner domain.OwnerSummary
	err := r.Pool.QueryRow(ctx, headerQuery, playlistID).Scan(
		&m.PlaylistID,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&owner.UserID,
		&owner.Username,
		&owner.FullName,
		&owner.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find playlist %s: %w", playlistID, err)
	}

	videosQuery := `
		SELECT v.video_id, v.title, v.thumbnail_url, v.duration_seconds, v.views
		FROM playlist_videos pv
		JOIN videos v ON v.video_id = pv.video_id AND v.deleted_at IS NULL
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at ASC;
	`
	rows, err := r.Pool.Query(ctx, videosQuery, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	defer rows.Close()

	videos := []domain.VideoSummary{}
	for rows.Next() {
		var v domain.VideoSummary
		if err := rows.Scan(&v.VideoID, &v.Title, &v.ThumbnailURL, &v.DurationSeconds, &v.Views); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video row: %w", err)
		}
		videos = append(videos, v)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating playlist video rows: %w", rows.Err())
	}

	return &domain.PlaylistWithVideos{
		Playlist: mapping.ToDomainPlaylist(m),
		Owner:    owner,
		Videos:   videos,
	}, nil
}

func (r *PgxPlaylistRepository) ListPlaylistsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Playlist, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT playlist_id, owner_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.Playlist{}
	for rows.Next() {
		var m models.Playlist
		err := rows.Scan(
			&m.PlaylistID,
			&m.OwnerID,
			&m.Name,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, mapping.ToDomainPlaylist(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating playlist rows: %w", rows.Err())
	}

	return playlists, nil
}

func (r *PgxPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	m := mapping.ToModelPlaylist(playlist)
	query := `
		INSERT INTO playlists (playlist_id, owner_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PlaylistID,
		m.OwnerID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}
	return nil
}

func (r *PgxPlaylistRepository) UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	m := mapping.ToModelPlaylist(playlist)
	query := `
		UPDATE playlists
		SET name = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE playlist_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Description, m.LastUpdatedAt, m.LastUpdatedBy, m.PlaylistID)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("playlist not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM playlists WHERE playlist_id = $1;`, playlistID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("playlist not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlaylistRepository) AddVideoToPlaylist(ctx context.Context, playlistID string, videoID string, addedAt time.Time) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (playlist_id, video_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, playlistID, videoID, addedAt); err != nil {
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}
	return nil
}

func (r *PgxPlaylistRepository) RemoveVideoFromPlaylist(ctx context.Context, playlistID string, videoID string) error {
	query := `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, playlistID, videoID)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not in playlist: %w", apperrors.ErrNotFound)
	}
	return nil
}
