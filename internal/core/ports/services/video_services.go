package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// VideoReaderSvc defines read operations for video data
type VideoReaderSvc interface {
	// GetVideoByID retrieves a published video with its owner summary,
	// recording a view and a watch history entry when viewerUserID is set.
	// Owners can fetch their own unpublished videos.
	GetVideoByID(ctx context.Context, videoID string, viewerUserID string) (*domain.VideoWithOwner, error)

	// ListVideos retrieves published videos matching the query.
	ListVideos(ctx context.Context, req dto.ListVideosRequest) ([]domain.VideoWithOwner, int64, error)
}

// VideoWriterSvc defines write operations for video data
type VideoWriterSvc interface {
	// PublishVideo creates a new video owned by ownerID.
	PublishVideo(ctx context.Context, ownerID string, req dto.CreateVideoRequest) (*domain.Video, error)

	// UpdateVideo updates a video's details. Only the owner may update.
	UpdateVideo(ctx context.Context, videoID string, ownerID string, req dto.UpdateVideoRequest) (*domain.Video, error)

	// TogglePublishStatus flips the publish flag. Only the owner may toggle.
	TogglePublishStatus(ctx context.Context, videoID string, ownerID string) (*domain.Video, error)

	// DeleteVideo soft deletes a video. Only the owner may delete.
	DeleteVideo(ctx context.Context, videoID string, ownerID string) error
}

// VideoSvcFacade combines all video-related service interfaces
type VideoSvcFacade interface {
	VideoReaderSvc
	VideoWriterSvc
}
