package models

// Comment represents a row of the comments table.
type Comment struct {
	CommentID string `db:"comment_id"`
	VideoID   string `db:"video_id"`
	OwnerID   string `db:"owner_id"`
	Content   string `db:"content"`
	AuditFields
}
