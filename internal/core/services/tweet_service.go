package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type tweetService struct {
	BaseService
	tweetRepo portsrepo.TweetRepositoryFacade
}

// NewTweetService creates the tweet service.
func NewTweetService(tweetRepo portsrepo.TweetRepositoryFacade) portssvc.TweetSvcFacade {
	return &tweetService{tweetRepo: tweetRepo}
}

var _ portssvc.TweetSvcFacade = (*tweetService)(nil)

func (s *tweetService) CreateTweet(ctx context.Context, ownerID string, req dto.CreateTweetRequest) (*domain.Tweet, error) {
	now := time.Now()
	tweet := domain.Tweet{
		TweetID: uuid.NewString(),
		OwnerID: ownerID,
		Content: req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.tweetRepo.SaveTweet(ctx, tweet); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}

	return &tweet, nil
}

func (s *tweetService) ListUserTweets(ctx context.Context, ownerID string, limit int, offset int) ([]domain.TweetWithOwner, error) {
	tweets, err := s.tweetRepo.ListTweetsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return tweets, nil
}

func (s *tweetService) loadOwnedTweet(ctx context.Context, tweetID string, ownerID string) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.FindTweetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != ownerID {
		return nil, fmt.Errorf("not the tweet owner: %w", apperrors.ErrForbidden)
	}
	return tweet, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, tweetID string, ownerID string, req dto.UpdateTweetRequest) (*domain.Tweet, error) {
	tweet, err := s.loadOwnedTweet(ctx, tweetID, ownerID)
	if err != nil {
		return nil, err
	}

	tweet.Content = req.Content
	tweet.LastUpdatedAt = time.Now()
	tweet.LastUpdatedBy = ownerID

	if err := s.tweetRepo.UpdateTweet(ctx, *tweet); err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}

	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, tweetID string, ownerID string) error {
	if _, err := s.loadOwnedTweet(ctx, tweetID, ownerID); err != nil {
		return err
	}

	if err := s.tweetRepo.DeleteTweet(ctx, tweetID); err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	return nil
}
