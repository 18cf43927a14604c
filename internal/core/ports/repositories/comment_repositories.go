package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a comment by ID.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// ListCommentsByVideo retrieves a video's comments, most recent first,
	// along with the total number of comments on the video.
	ListCommentsByVideo(ctx context.Context, videoID string, limit int, offset int) ([]domain.CommentWithOwner, int64, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateComment updates an existing comment's content.
	UpdateComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
