package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionSvcFacade defines operations for channel subscriptions
type SubscriptionSvcFacade interface {
	// ToggleSubscription flips the subscriber's subscription to a channel and
	// returns whether the subscription exists after the call. Subscribing to
	// your own channel is rejected.
	ToggleSubscription(ctx context.Context, channelID string, subscriberID string) (bool, error)

	// ListSubscribers retrieves the users subscribed to a channel along with
	// the channel's total subscriber count.
	ListSubscribers(ctx context.Context, channelID string, limit int, offset int) ([]domain.OwnerSummary, int64, error)

	// ListSubscribedChannels retrieves the channels a user subscribes to along
	// with the total number of such channels.
	ListSubscribedChannels(ctx context.Context, subscriberID string, limit int, offset int) ([]domain.OwnerSummary, int64, error)
}
