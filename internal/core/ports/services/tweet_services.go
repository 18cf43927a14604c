package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// TweetSvcFacade defines operations for tweets
type TweetSvcFacade interface {
	// CreateTweet creates a new tweet owned by ownerID.
	CreateTweet(ctx context.Context, ownerID string, req dto.CreateTweetRequest) (*domain.Tweet, error)

	// ListUserTweets retrieves a user's tweets, most recent first.
	ListUserTweets(ctx context.Context, ownerID string, limit int, offset int) ([]domain.TweetWithOwner, error)

	// UpdateTweet updates a tweet's content. Only the owner may update.
	UpdateTweet(ctx context.Context, tweetID string, ownerID string, req dto.UpdateTweetRequest) (*domain.Tweet, error)

	// DeleteTweet removes a tweet. Only the owner may delete.
	DeleteTweet(ctx context.Context, tweetID string, ownerID string) error
}
