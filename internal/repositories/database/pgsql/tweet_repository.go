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

type PgxTweetRepository struct {
	BaseRepository
}

func newPgxTweetRepository(db *pgxpool.Pool) portsrepo.TweetRepositoryFacade {
	return &PgxTweetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TweetRepositoryFacade = (*PgxTweetRepository)(nil)

func (r *PgxTweetRepository) FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	query := `
		SELECT tweet_id, owner_id, content, created_at, created_by, last_updated_at, last_updated_by
		FROM tweets
		WHERE tweet_id = $1;
	`
	var m models.Tweet
	err := r.Pool.QueryRow(ctx, query, tweetID).Scan(
		&m.TweetID,
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
		return nil, fmt.Errorf("failed to find tweet by ID %s: %w", tweetID, err)
	}
	t := mapping.ToDomainTweet(m)
	return &t, nil
}

func (r *PgxTweetRepository) ListTweetsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.TweetWithOwner, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT t.tweet_id, t.owner_id, t.content,
			t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
			u.user_id, u.username, u.full_name, u.avatar_url
		FROM tweets t
		JOIN users u ON u.user_id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tweets: %w", err)
	}
	defer rows.Close()

	tweets := []domain.TweetWithOwner{}
	for rows.Next() {
		var m models.Tweet
		var owner domain.OwnerSummary
		err := rows.Scan(
			&m.TweetID,
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
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}
		tweets = append(tweets, domain.TweetWithOwner{Tweet: mapping.ToDomainTweet(m), Owner: owner})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tweet rows: %w", rows.Err())
	}

	return tweets, nil
}

func (r *PgxTweetRepository) SaveTweet(ctx context.Context, tweet domain.Tweet) error {
	m := mapping.ToModelTweet(tweet)
	query := `
		INSERT INTO tweets (tweet_id, owner_id, content, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TweetID,
		m.OwnerID,
		m.Content,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tweet: %w", err)
	}
	return nil
}

func (r *PgxTweetRepository) UpdateTweet(ctx context.Context, tweet domain.Tweet) error {
	m := mapping.ToModelTweet(tweet)
	query := `
		UPDATE tweets
		SET content = $1, last_updated_at = $2, last_updated_by = $3
		WHERE tweet_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Content, m.LastUpdatedAt, m.LastUpdatedBy, m.TweetID)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tweet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTweetRepository) DeleteTweet(ctx context.Context, tweetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tweets WHERE tweet_id = $1;`, tweetID)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tweet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
