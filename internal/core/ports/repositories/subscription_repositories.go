package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionReader defines read operations for subscription data
type SubscriptionReader interface {
	// FindSubscription retrieves the subscription edge between a channel and
	// a subscriber, if any.
	FindSubscription(ctx context.Context, channelID string, subscriberID string) (*domain.Subscription, error)

	// CountSubscribers returns how many users subscribe to a channel.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)

	// CountSubscribedTo returns how many channels a user subscribes to.
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)

	// ListSubscribers retrieves the users subscribed to a channel.
	ListSubscribers(ctx context.Context, channelID string, limit int, offset int) ([]domain.OwnerSummary, error)

	// ListSubscribedChannels retrieves the channels a user subscribes to.
	ListSubscribedChannels(ctx context.Context, subscriberID string, limit int, offset int) ([]domain.OwnerSummary, error)
}

// SubscriptionWriter defines write operations for subscription data
type SubscriptionWriter interface {
	// SaveSubscription persists a new subscription edge.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes a subscription edge.
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// SubscriptionRepositoryFacade combines all subscription-related repository interfaces
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
