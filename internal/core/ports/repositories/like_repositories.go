package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// LikeReader defines read operations for like data
type LikeReader interface {
	// FindLike retrieves the like a user placed on a target, if any.
	FindLike(ctx context.Context, likedBy string, kind domain.LikeTargetKind, targetID string) (*domain.Like, error)

	// ListLikedVideos retrieves the published videos a user has liked,
	// most recently liked first.
	ListLikedVideos(ctx context.Context, userID string, limit int, offset int) ([]domain.LikedVideo, error)
}

// LikeWriter defines write operations for like data
type LikeWriter interface {
	// SaveLike persists a new like.
	SaveLike(ctx context.Context, like domain.Like) error

	// DeleteLike removes a like.
	DeleteLike(ctx context.Context, likeID string) error
}

// LikeRepositoryFacade combines all like-related repository interfaces
type LikeRepositoryFacade interface {
	LikeReader
	LikeWriter
}
