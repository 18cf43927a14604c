package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/vidtube/vidtube_backend/internal/utils/mapping"
)

type PgxLikeRepository struct {
	BaseRepository
}

func newPgxLikeRepository(db *pgxpool.Pool) portsrepo.LikeRepositoryFacade {
	return &PgxLikeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LikeRepositoryFacade = (*PgxLikeRepository)(nil)

func likeTargetColumn(kind domain.LikeTargetKind) (string, error) {
	switch kind {
	case domain.LikeTargetVideo:
		return "video_id", nil
	case domain.LikeTargetComment:
		return "comment_id", nil
	case domain.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("%w: unknown like target kind %q", apperrors.ErrBadRequest, kind)
	}
}

func (r *PgxLikeRepository) FindLike(ctx context.Context, likedBy string, kind domain.LikeTargetKind, targetID string) (*domain.Like, error) {
	column, err := likeTargetColumn(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT like_id, liked_by, video_id, comment_id, tweet_id, created_at
		FROM likes
		WHERE liked_by = $1 AND %s = $2;
	`, column)

	var m models.Like
	err = r.Pool.QueryRow(ctx, query, likedBy, targetID).Scan(
		&m.LikeID,
		&m.LikedBy,
		&m.VideoID,
		&m.CommentID,
		&m.TweetID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	l := mapping.ToDomainLike(m)
	return &l, nil
}

func (r *PgxLikeRepository) ListLikedVideos(ctx context.Context, userID string, limit int, offset int) ([]domain.LikedVideo, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT l.like_id, l.created_at,
			v.video_id, v.title, v.thumbnail_url, v.duration_seconds, v.views,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM likes l
		JOIN videos v ON v.video_id = l.video_id AND v.deleted_at IS NULL AND v.is_published = TRUE
		JOIN users u ON u.user_id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked videos: %w", err)
	}
	defer rows.Close()

	liked := []domain.LikedVideo{}
	for rows.Next() {
		var entry domain.LikedVideo
		err := rows.Scan(
			&entry.LikeID,
			&entry.LikedAt,
			&entry.Video.VideoID,
			&entry.Video.Title,
			&entry.Video.ThumbnailURL,
			&entry.Video.DurationSeconds,
			&entry.Video.Views,
			&entry.Owner.UserID,
			&entry.Owner.Username,
			&entry.Owner.FullName,
			&entry.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liked video row: %w", err)
		}
		liked = append(liked, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liked video rows: %w", rows.Err())
	}

	return liked, nil
}

func (r *PgxLikeRepository) SaveLike(ctx context.Context, like domain.Like) error {
	m := mapping.ToModelLike(like)
	query := `
		INSERT INTO likes (like_id, liked_by, video_id, comment_id, tweet_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LikeID,
		m.LikedBy,
		m.VideoID,
		m.CommentID,
		m.TweetID,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save like: %w", err)
	}
	return nil
}

func (r *PgxLikeRepository) DeleteLike(ctx context.Context, likeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM likes WHERE like_id = $1;`, likeID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("like not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
