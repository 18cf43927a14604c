package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/vidtube/vidtube_backend/internal/utils/mapping"
)

const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url,
	auth_provider, provider_user_id, is_verified, refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUserRow(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.IsVerified,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
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

func (r *PgxUserRepository) findUserWhere(ctx context.Context, clause string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + clause + ` AND deleted_at IS NULL;`
	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserWhere(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserWhere(ctx, "username = $1", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserWhere(ctx, "email = $1", email)
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`
	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error) {
	query := `
		SELECT u.user_id, u.username, u.full_name, u.avatar_url, u.cover_image_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscriber_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id) AS subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.user_id AND s.subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.username = $1 AND u.deleted_at IS NULL;
	`
	var p domain.ChannelProfile
	err := r.Pool.QueryRow(ctx, query, username, viewerUserID).Scan(
		&p.UserID,
		&p.Username,
		&p.FullName,
		&p.AvatarURL,
		&p.CoverImageURL,
		&p.SubscriberCount,
		&p.SubscribedToCount,
		&p.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel profile for %s: %w", username, err)
	}
	return &p, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.FullName,
		m.PasswordHash,
		m.AvatarURL,
		m.CoverImageURL,
		m.AuthProvider,
		m.ProviderUserID,
		m.IsVerified,
		m.RefreshTokenHash,
		m.RefreshTokenExpiryTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET email = $1, full_name = $2, password_hash = $3, avatar_url = $4, cover_image_url = $5,
			is_verified = $6, last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $9 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Email,
		m.FullName,
		m.PasswordHash,
		m.AvatarURL,
		m.CoverImageURL,
		m.IsVerified,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: email already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, refreshTokenHash, refreshTokenExpiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// RotateRefreshToken is a compare-and-swap: the update only lands when the
// stored hash still equals oldTokenHash, so a token can be redeemed at most once.
func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID string, oldTokenHash string, newTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $3, refresh_token_expiry_time = $4, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND refresh_token_hash = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, oldTokenHash, newTokenHash, refreshTokenExpiryTime)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("stored refresh token mismatch: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpsertWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at;
	`
	if _, err := r.Pool.Exec(ctx, query, userID, videoID, watchedAt); err != nil {
		return fmt.Errorf("failed to upsert watch history: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
			v.duration_seconds, v.views, v.is_published,
			v.created_at, v.created_by, v.last_updated_at, v.last_updated_by,
			u.user_id, u.username, u.full_name, u.avatar_url,
			wh.watched_at
		FROM watch_history wh
		JOIN videos v ON v.video_id = wh.video_id AND v.deleted_at IS NULL
		JOIN users u ON u.user_id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	entries := []domain.WatchHistoryEntry{}
	for rows.Next() {
		var m models.Video
		var owner domain.OwnerSummary
		var watchedAt time.Time
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
			&owner.UserID,
			&owner.Username,
			&owner.FullName,
			&owner.AvatarURL,
			&watchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		entries = append(entries, domain.WatchHistoryEntry{
			VideoWithOwner: domain.VideoWithOwner{
				Video: mapping.ToDomainVideo(m),
				Owner: owner,
			},
			WatchedAt: watchedAt,
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}

	return entries, nil
}
