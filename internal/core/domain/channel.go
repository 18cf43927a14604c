package domain

import "time"

// ChannelProfile is the derived, read-only view of a user's channel as
// seen by a (possibly anonymous) viewer.
type ChannelProfile struct {
	UserID            string  `json:"userID"`
	Username          string  `json:"username"`
	FullName          string  `json:"fullName"`
	AvatarURL         string  `json:"avatarURL"`
	CoverImageURL     *string `json:"coverImageURL,omitempty"`
	SubscriberCount   int64   `json:"subscriberCount"`
	SubscribedToCount int64   `json:"subscribedToCount"`
	IsSubscribed      bool    `json:"isSubscribed"`
}

// ChannelStats aggregates the dashboard numbers for a channel.
type ChannelStats struct {
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// WatchHistoryEntry is one watched video joined with its uploader's
// minimal profile, ordered most-recent-first.
type WatchHistoryEntry struct {
	VideoWithOwner
	WatchedAt time.Time `json:"watchedAt"`
}
