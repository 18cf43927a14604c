package domain

// Tweet represents a short text post by a user.
type Tweet struct {
	TweetID string `json:"tweetID"` // Primary Key (UUID)
	OwnerID string `json:"ownerID"` // FK -> users.user_id
	Content string `json:"content"`
	AuditFields
}

// TweetWithOwner is a tweet joined with the minimal profile of its author.
type TweetWithOwner struct {
	Tweet
	Owner OwnerSummary `json:"owner"`
}
