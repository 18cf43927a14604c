package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// CreateTweetRequest defines the payload for posting a tweet.
type CreateTweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

// UpdateTweetRequest defines the payload for editing a tweet.
type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

// TweetResponse is the public representation of a tweet.
type TweetResponse struct {
	TweetID   string    `json:"tweetId"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTweetResponse converts a domain.Tweet.
func ToTweetResponse(t *domain.Tweet) TweetResponse {
	return TweetResponse{
		TweetID:   t.TweetID,
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.LastUpdatedAt,
	}
}

// TweetWithOwnerResponse is a tweet with its author's summary joined in.
type TweetWithOwnerResponse struct {
	TweetResponse
	Owner OwnerResponse `json:"owner"`
}

// ToTweetListResponse converts a slice of tweets with owners to its public form.
func ToTweetListResponse(tweets []domain.TweetWithOwner) []TweetWithOwnerResponse {
	out := make([]TweetWithOwnerResponse, len(tweets))
	for i := range tweets {
		out[i] = TweetWithOwnerResponse{
			TweetResponse: ToTweetResponse(&tweets[i].Tweet),
			Owner:         ToOwnerResponse(tweets[i].Owner),
		}
	}
	return out
}
