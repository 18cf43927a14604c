package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// TweetReader defines read operations for tweet data
type TweetReader interface {
	// FindTweetByID retrieves a tweet by ID.
	FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error)

	// ListTweetsByOwner retrieves a user's tweets, most recent first.
	ListTweetsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.TweetWithOwner, error)
}

// TweetWriter defines write operations for tweet data
type TweetWriter interface {
	// SaveTweet persists a new tweet.
	SaveTweet(ctx context.Context, tweet domain.Tweet) error

	// UpdateTweet updates an existing tweet's content.
	UpdateTweet(ctx context.Context, tweet domain.Tweet) error

	// DeleteTweet removes a tweet.
	DeleteTweet(ctx context.Context, tweetID string) error
}

// TweetRepositoryFacade combines all tweet-related repository interfaces
type TweetRepositoryFacade interface {
	TweetReader
	TweetWriter
}
