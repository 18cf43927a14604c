package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type videoService struct {
	BaseService
	videoRepo portsrepo.VideoRepositoryFacade
	history   portssvc.WatchHistorySvc
}

// NewVideoService creates the video service. The watch history service is
// used to record views against the viewer's history.
func NewVideoService(videoRepo portsrepo.VideoRepositoryFacade, history portssvc.WatchHistorySvc) portssvc.VideoSvcFacade {
	return &videoService{
		videoRepo: videoRepo,
		history:   history,
	}
}

var _ portssvc.VideoSvcFacade = (*videoService)(nil)

// GetVideoByID returns a video and, for identified viewers, bumps the view
// counter and the viewer's watch history. Unpublished videos are only visible
// to their owner.
func (s *videoService) GetVideoByID(ctx context.Context, videoID string, viewerUserID string) (*domain.VideoWithOwner, error) {
	video, err := s.videoRepo.FindVideoWithOwner(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	if !video.IsPublished && video.OwnerID != viewerUserID {
		// Hide unpublished videos from everyone but the owner.
		return nil, apperrors.ErrNotFound
	}

	if viewerUserID != "" && video.OwnerID != viewerUserID {
		if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
			s.LogError(ctx, err, "failed to increment views", "video_id", videoID)
		} else {
			video.Views++
		}
		if err := s.history.RecordWatchEvent(ctx, viewerUserID, videoID); err != nil {
			s.LogError(ctx, err, "failed to record watch event", "video_id", videoID, "user_id", viewerUserID)
		}
	}

	return video, nil
}

func (s *videoService) ListVideos(ctx context.Context, req dto.ListVideosRequest) ([]domain.VideoWithOwner, int64, error) {
	req.Normalize()
	q := domain.VideoListQuery{
		Query:         req.Query,
		OwnerID:       req.UserID,
		SortBy:        req.SortBy,
		SortAsc:       req.SortType == "asc",
		Limit:         req.Limit,
		Offset:        req.Offset(),
		OnlyPublished: true,
	}
	videos, total, err := s.videoRepo.ListVideos(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, total, nil
}

func (s *videoService) PublishVideo(ctx context.Context, ownerID string, req dto.CreateVideoRequest) (*domain.Video, error) {
	now := time.Now()
	video := domain.Video{
		VideoID:         uuid.NewString(),
		OwnerID:         ownerID,
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		ThumbnailURL:    req.ThumbnailURL,
		DurationSeconds: req.DurationSeconds,
		IsPublished:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.videoRepo.SaveVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to publish video: %w", err)
	}

	s.LogInfo(ctx, "video published", "video_id", video.VideoID, "owner_id", ownerID)
	return &video, nil
}

// loadOwnedVideo fetches a video and enforces that ownerID owns it.
func (s *videoService) loadOwnedVideo(ctx context.Context, videoID string, ownerID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	if video.OwnerID != ownerID {
		return nil, fmt.Errorf("not the video owner: %w", apperrors.ErrForbidden)
	}
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, videoID string, ownerID string, req dto.UpdateVideoRequest) (*domain.Video, error) {
	video, err := s.loadOwnedVideo(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.ThumbnailURL != nil {
		video.ThumbnailURL = *req.ThumbnailURL
	}
	video.LastUpdatedAt = time.Now()
	video.LastUpdatedBy = ownerID

	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

func (s *videoService) TogglePublishStatus(ctx context.Context, videoID string, ownerID string) (*domain.Video, error) {
	video, err := s.loadOwnedVideo(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	video.IsPublished = !video.IsPublished
	video.LastUpdatedAt = now
	video.LastUpdatedBy = ownerID

	if err := s.videoRepo.SetPublishStatus(ctx, videoID, video.IsPublished, ownerID, now); err != nil {
		return nil, fmt.Errorf("failed to toggle publish status: %w", err)
	}

	return video, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, videoID string, ownerID string) error {
	if _, err := s.loadOwnedVideo(ctx, videoID, ownerID); err != nil {
		return err
	}

	if err := s.videoRepo.MarkVideoDeleted(ctx, videoID, time.Now(), ownerID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	s.LogInfo(ctx, "video deleted", "video_id", videoID, "owner_id", ownerID)
	return nil
}
