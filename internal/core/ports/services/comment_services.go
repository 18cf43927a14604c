package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// CommentSvcFacade defines operations for video comments
type CommentSvcFacade interface {
	// AddComment creates a new comment on a video.
	AddComment(ctx context.Context, videoID string, ownerID string, req dto.CreateCommentRequest) (*domain.Comment, error)

	// ListVideoComments retrieves a video's comments, most recent first,
	// along with the total comment count.
	ListVideoComments(ctx context.Context, videoID string, limit int, offset int) ([]domain.CommentWithOwner, int64, error)

	// UpdateComment updates a comment's content. Only the owner may update.
	UpdateComment(ctx context.Context, commentID string, ownerID string, req dto.UpdateCommentRequest) (*domain.Comment, error)

	// DeleteComment removes a comment. The comment owner or the video owner may delete.
	DeleteComment(ctx context.Context, commentID string, requestingUserID string) error
}
