package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// PlaylistSvcFacade defines operations for playlists
type PlaylistSvcFacade interface {
	// CreatePlaylist creates a new playlist owned by ownerID.
	CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error)

	// GetPlaylistByID retrieves a playlist with its videos.
	GetPlaylistByID(ctx context.Context, playlistID string) (*domain.PlaylistWithVideos, error)

	// ListUserPlaylists retrieves a user's playlists.
	ListUserPlaylists(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Playlist, error)

	// UpdatePlaylist updates a playlist's name and description. Only the owner may update.
	UpdatePlaylist(ctx context.Context, playlistID string, ownerID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error)

	// DeletePlaylist removes a playlist. Only the owner may delete.
	DeletePlaylist(ctx context.Context, playlistID string, ownerID string) error

	// AddVideo adds a video to a playlist. Only the owner may modify membership.
	AddVideo(ctx context.Context, playlistID string, videoID string, ownerID string) error

	// RemoveVideo removes a video from a playlist. Only the owner may modify membership.
	RemoveVideo(ctx context.Context, playlistID string, videoID string, ownerID string) error
}
