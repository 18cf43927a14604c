package models

import "time"

// Subscription represents a row of the subscriptions table.
// UNIQUE(channel_id, subscriber_id) guarantees a single edge per pair.
type Subscription struct {
	SubscriptionID string    `db:"subscription_id"`
	ChannelID      string    `db:"channel_id"`
	SubscriberID   string    `db:"subscriber_id"`
	CreatedAt      time.Time `db:"created_at"`
}
