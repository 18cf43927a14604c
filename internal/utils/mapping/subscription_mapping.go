package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelSubscription converts a domain Subscription to a model Subscription.
func ToModelSubscription(d domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriptionID: d.SubscriptionID,
		ChannelID:      d.ChannelID,
		SubscriberID:   d.SubscriberID,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainSubscription converts a model Subscription to a domain Subscription.
func ToDomainSubscription(m models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID: m.SubscriptionID,
		ChannelID:      m.ChannelID,
		SubscriberID:   m.SubscriberID,
		CreatedAt:      m.CreatedAt,
	}
}
