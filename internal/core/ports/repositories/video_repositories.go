package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// VideoReader defines read operations for video data
type VideoReader interface {
	// FindVideoByID retrieves a video by ID, regardless of publish state.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// FindVideoWithOwner retrieves a video by ID with its owner summary joined in.
	FindVideoWithOwner(ctx context.Context, videoID string) (*domain.VideoWithOwner, error)

	// ListVideos retrieves videos matching the query along with the total
	// number of matches before pagination.
	ListVideos(ctx context.Context, q domain.VideoListQuery) ([]domain.VideoWithOwner, int64, error)
}

// VideoWriter defines write operations for video data
type VideoWriter interface {
	// SaveVideo persists a new video.
	SaveVideo(ctx context.Context, video domain.Video) error

	// UpdateVideo updates an existing video's details.
	UpdateVideo(ctx context.Context, video domain.Video) error

	// SetPublishStatus flips the publish flag for a video.
	SetPublishStatus(ctx context.Context, videoID string, isPublished bool, updatedBy string, updatedAt time.Time) error

	// IncrementViews bumps the view counter for a video.
	IncrementViews(ctx context.Context, videoID string) error

	// MarkVideoDeleted marks a video as deleted (soft delete).
	MarkVideoDeleted(ctx context.Context, videoID string, deletedAt time.Time, deletedBy string) error
}

// VideoRepositoryFacade combines all video-related repository interfaces
type VideoRepositoryFacade interface {
	VideoReader
	VideoWriter
}
