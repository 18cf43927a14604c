package domain

import "time"

// LikeTargetKind identifies what kind of entity a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "VIDEO"
	LikeTargetComment LikeTargetKind = "COMMENT"
	LikeTargetTweet   LikeTargetKind = "TWEET"
)

// Like is an edge from a user to exactly one of video/comment/tweet.
type Like struct {
	LikeID    string    `json:"likeID"`  // Primary Key (UUID)
	LikedBy   string    `json:"likedBy"` // FK -> users.user_id
	VideoID   *string   `json:"videoID,omitempty"`
	CommentID *string   `json:"commentID,omitempty"`
	TweetID   *string   `json:"tweetID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedVideo is a liked video joined with its summary and uploader profile.
type LikedVideo struct {
	LikeID  string       `json:"likeID"`
	Video   VideoSummary `json:"video"`
	Owner   OwnerSummary `json:"owner"`
	LikedAt time.Time    `json:"likedAt"`
}
