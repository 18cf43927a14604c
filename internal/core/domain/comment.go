package domain

// Comment represents a comment on a video.
type Comment struct {
	CommentID string `json:"commentID"` // Primary Key (UUID)
	VideoID   string `json:"videoID"`   // FK -> videos.video_id
	OwnerID   string `json:"ownerID"`   // FK -> users.user_id
	Content   string `json:"content"`
	AuditFields
}

// CommentWithOwner is a comment joined with the minimal profile of its author.
type CommentWithOwner struct {
	Comment
	Owner OwnerSummary `json:"owner"`
}
