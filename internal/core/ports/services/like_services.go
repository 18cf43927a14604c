package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// LikeSvcFacade defines operations for likes on videos, comments and tweets
type LikeSvcFacade interface {
	// ToggleLike flips the like state for a target and returns whether the
	// target is liked after the call.
	ToggleLike(ctx context.Context, userID string, kind domain.LikeTargetKind, targetID string) (bool, error)

	// ListLikedVideos retrieves the videos a user has liked, most recently liked first.
	ListLikedVideos(ctx context.Context, userID string, limit int, offset int) ([]domain.LikedVideo, error)
}
