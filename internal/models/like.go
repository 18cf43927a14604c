package models

import (
	"database/sql"
	"time"
)

// Like represents a row of the likes table. Exactly one of VideoID,
// CommentID and TweetID is non-null; partial unique indexes keep one
// like per (user, target).
type Like struct {
	LikeID    string         `db:"like_id"`
	LikedBy   string         `db:"liked_by"`
	VideoID   sql.NullString `db:"video_id"`
	CommentID sql.NullString `db:"comment_id"`
	TweetID   sql.NullString `db:"tweet_id"`
	CreatedAt time.Time      `db:"created_at"`
}
