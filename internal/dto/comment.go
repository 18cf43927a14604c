package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// CreateCommentRequest defines the payload for commenting on a video.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// UpdateCommentRequest defines the payload for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentResponse is the public representation of a comment.
type CommentResponse struct {
	CommentID string    `json:"commentId"`
	VideoID   string    `json:"videoId"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCommentResponse converts a domain.Comment.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		VideoID:   c.VideoID,
		OwnerID:   c.OwnerID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.LastUpdatedAt,
	}
}

// CommentWithOwnerResponse is a comment with its author's summary joined in.
type CommentWithOwnerResponse struct {
	CommentResponse
	Owner OwnerResponse `json:"owner"`
}

// ListCommentsResponse wraps a page of comments with the video's total comment count.
type ListCommentsResponse struct {
	Comments   []CommentWithOwnerResponse `json:"comments"`
	TotalCount int64                      `json:"totalCount"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
}

// ToListCommentsResponse converts a page of comments to its public form.
func ToListCommentsResponse(comments []domain.CommentWithOwner, total int64, page, limit int) ListCommentsResponse {
	out := make([]CommentWithOwnerResponse, len(comments))
	for i := range comments {
		out[i] = CommentWithOwnerResponse{
			CommentResponse: ToCommentResponse(&comments[i].Comment),
			Owner:           ToOwnerResponse(comments[i].Owner),
		}
	}
	return ListCommentsResponse{
		Comments:   out,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}
}
