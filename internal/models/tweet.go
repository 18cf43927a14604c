package models

// Tweet represents a row of the tweets table.
type Tweet struct {
	TweetID string `db:"tweet_id"`
	OwnerID string `db:"owner_id"`
	Content string `db:"content"`
	AuditFields
}
