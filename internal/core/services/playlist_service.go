package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type playlistService struct {
	BaseService
	playlistRepo portsrepo.PlaylistRepositoryFacade
	videoRepo    portsrepo.VideoRepositoryFacade
}

// NewPlaylistService creates the playlist service.
func NewPlaylistService(playlistRepo portsrepo.PlaylistRepositoryFacade, videoRepo portsrepo.VideoRepositoryFacade) portssvc.PlaylistSvcFacade {
	return &playlistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

var _ portssvc.PlaylistSvcFacade = (*playlistService)(nil)

func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	now := time.Now()
	playlist := domain.Playlist{
		PlaylistID:  uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.playlistRepo.SavePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	return &playlist, nil
}

func (s *playlistService) GetPlaylistByID(ctx context.Context, playlistID string) (*domain.PlaylistWithVideos, error) {
	playlist, err := s.playlistRepo.FindPlaylistWithVideos(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Playlist, error) {
	playlists, err := s.playlistRepo.ListPlaylistsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (s *playlistService) loadOwnedPlaylist(ctx context.Context, playlistID string, ownerID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != ownerID {
		return nil, fmt.Errorf("not the playlist owner: %w", apperrors.ErrForbidden)
	}
	return playlist, nil
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID string, ownerID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error) {
	playlist, err := s.loadOwnedPlaylist(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		playlist.Name = *req.Name
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}
	playlist.LastUpdatedAt = time.Now()
	playlist.LastUpdatedBy = ownerID

	if err := s.playlistRepo.UpdatePlaylist(ctx, *playlist); err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}

	return playlist, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID string, ownerID string) error {
	if _, err := s.loadOwnedPlaylist(ctx, playlistID, ownerID); err != nil {
		return err
	}

	if err := s.playlistRepo.DeletePlaylist(ctx, playlistID); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID string, videoID string, ownerID string) error {
	if _, err := s.loadOwnedPlaylist(ctx, playlistID, ownerID); err != nil {
		return err
	}
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return fmt.Errorf("failed to load video for playlist: %w", err)
	}

	if err := s.playlistRepo.AddVideoToPlaylist(ctx, playlistID, videoID, time.Now()); err != nil {
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}

	return nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID string, videoID string, ownerID string) error {
	if _, err := s.loadOwnedPlaylist(ctx, playlistID, ownerID); err != nil {
		return err
	}

	if err := s.playlistRepo.RemoveVideoFromPlaylist(ctx, playlistID, videoID); err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}

	return nil
}
