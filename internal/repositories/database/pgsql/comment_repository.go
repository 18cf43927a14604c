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

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, video_id, owner_id, content, created_at, created_by, last_updated_at, last_updated_by
		FROM comments
		WHERE comment_id = $1;
	`
	var m models.Comment
	err := r.Pool.QueryRow(ctx, query, commentID).Scan(
		&m.CommentID,
		&m.VideoID,
		&m.OwnerID,
		&m.Content,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}
	c := mapping.ToDomainComment(m)
	return &c, nil
}

func (r *PgxCommentRepository) ListCommentsByVideo(ctx context.Context, videoID string, limit int, offset int) ([]domain.CommentWithOwner, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE video_id = $1;`, videoID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT c.comment_id, c.video_id, c.owner_id, c.content,
			c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM comments c
		JOIN users u ON u.user_id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, videoID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentWithOwner{}
	for rows.Next() {
		var m models.Comment
		var owner domain.OwnerSummary
		err := rows.Scan(
			&m.CommentID,
			&m.VideoID,
			&m.OwnerID,
			&m.Content,
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
			return nil, 0, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, domain.CommentWithOwner{Comment: mapping.ToDomainComment(m), Owner: owner})
	}

	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}

	return comments, total, nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		INSERT INTO comments (comment_id, video_id, owner_id, content, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CommentID,
		m.VideoID,
		m.OwnerID,
		m.Content,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		UPDATE comments
		SET content = $1, last_updated_at = $2, last_updated_by = $3
		WHERE comment_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Content, m.LastUpdatedAt, m.LastUpdatedBy, m.CommentID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
