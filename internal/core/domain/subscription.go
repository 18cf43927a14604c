package domain

import "time"

// Subscription is an edge record: subscriber follows channel.
// At most one edge may exist per (channel, subscriber) pair; the
// database enforces this with a uniqueness constraint.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"` // Primary Key (UUID)
	ChannelID      string    `json:"channelID"`      // FK -> users.user_id
	SubscriberID   string    `json:"subscriberID"`   // FK -> users.user_id
	CreatedAt      time.Time `json:"createdAt"`
}
