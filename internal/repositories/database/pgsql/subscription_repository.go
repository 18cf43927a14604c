package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/vidtube/vidtube_backend/internal/utils/mapping"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func (r *PgxSubscriptionRepository) FindSubscription(ctx context.Context, channelID string, subscriberID string) (*domain.Subscription, error) {
	query := `
		SELECT subscription_id, channel_id, subscriber_id, created_at
		FROM subscriptions
		WHERE channel_id = $1 AND subscriber_id = $2;
	`
	var m models.Subscription
	err := r.Pool.QueryRow(ctx, query, channelID, subscriberID).Scan(
		&m.SubscriptionID,
		&m.ChannelID,
		&m.SubscriberID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	s := mapping.ToDomainSubscription(m)
	return &s, nil
}

func (r *PgxSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1;`, channelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1;`, subscriberID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribed channels: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) listOwnerSummaries(ctx context.Context, query string, id string, limit int, offset int) ([]domain.OwnerSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.Pool.Query(ctx, query, id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	users := []domain.OwnerSummary{}
	for rows.Next() {
		var u domain.OwnerSummary
		if err := rows.Scan(&u.UserID, &u.Username, &u.FullName, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		users = append(users, u)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", rows.Err())
	}

	return users, nil
}

func (r *PgxSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string, limit int, offset int) ([]domain.OwnerSummary, error) {
	query := `
		SELECT u.user_id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.user_id = s.subscriber_id AND u.deleted_at IS NULL
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	return r.listOwnerSummaries(ctx, query, channelID, limit, offset)
}

func (r *PgxSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string, limit int, offset int) ([]domain.OwnerSummary, error) {
	query := `
		SELECT u.user_id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.user_id = s.channel_id AND u.deleted_at IS NULL
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	return r.listOwnerSummaries(ctx, query, subscriberID, limit, offset)
}

func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	m := mapping.ToModelSubscription(sub)
	query := `
		INSERT INTO subscriptions (subscription_id, channel_id, subscriber_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.SubscriptionID, m.ChannelID, m.SubscriberID, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: already subscribed", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM subscriptions WHERE subscription_id = $1;`, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subscription not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
