package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	userRepo         portsrepo.UserRepositoryFacade
}

// NewSubscriptionService creates the subscription service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// ToggleSubscription flips the subscriber's edge to a channel. Duplicate
// subscribes are impossible: the edge carries a uniqueness constraint, and a
// racing insert simply reads back as "already subscribed".
func (s *subscriptionService) ToggleSubscription(ctx context.Context, channelID string, subscriberID string) (bool, error) {
	if channelID == subscriberID {
		return false, fmt.Errorf("%w: cannot subscribe to your own channel", apperrors.ErrBadRequest)
	}

	if _, err := s.userRepo.FindUserByID(ctx, channelID); err != nil {
		return false, fmt.Errorf("failed to load channel: %w", err)
	}

	existing, err := s.subscriptionRepo.FindSubscription(ctx, channelID, subscriberID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("failed to look up subscription: %w", err)
	}

	if existing != nil {
		if err := s.subscriptionRepo.DeleteSubscription(ctx, existing.SubscriptionID); err != nil {
			return false, fmt.Errorf("failed to unsubscribe: %w", err)
		}
		return false, nil
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		ChannelID:      channelID,
		SubscriberID:   subscriberID,
		CreatedAt:      time.Now(),
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Raced with another subscribe; the edge exists, which is what was asked for.
			return true, nil
		}
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
	return true, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channelID string, limit int, offset int) ([]domain.OwnerSummary, int64, error) {
	subscribers, err := s.subscriptionRepo.ListSubscribers(ctx, channelID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	total, err := s.subscriptionRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return subscribers, total, nil
}

func (s *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string, limit int, offset int) ([]domain.OwnerSummary, int64, error) {
	channels, err := s.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	total, err := s.subscriptionRepo.CountSubscribedTo(ctx, subscriberID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribed channels: %w", err)
	}
	return channels, total, nil
}
