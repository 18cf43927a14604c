package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// PlaylistReader defines read operations for playlist data
type PlaylistReader interface {
	// FindPlaylistByID retrieves a playlist by ID without its videos.
	FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// FindPlaylistWithVideos retrieves a playlist with its owner summary and
	// contained videos in insertion order.
	FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.PlaylistWithVideos, error)

	// ListPlaylistsByOwner retrieves a user's playlists.
	ListPlaylistsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Playlist, error)
}

// PlaylistWriter defines write operations for playlist data
type PlaylistWriter interface {
	// SavePlaylist persists a new playlist.
	SavePlaylist(ctx context.Context, playlist domain.Playlist) error

	// UpdatePlaylist updates a playlist's name and description.
	UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error

	// DeletePlaylist removes a playlist and its video memberships.
	DeletePlaylist(ctx context.Context, playlistID string) error

	// AddVideoToPlaylist adds a video to a playlist. Adding a video that is
	// already present is a no-op.
	AddVideoToPlaylist(ctx context.Context, playlistID string, videoID string, addedAt time.Time) error

	// RemoveVideoFromPlaylist removes a video from a playlist. It returns
	// apperrors.ErrNotFound when the video is not in the playlist.
	RemoveVideoFromPlaylist(ctx context.Context, playlistID string, videoID string) error
}

// PlaylistRepositoryFacade combines all playlist-related repository interfaces
type PlaylistRepositoryFacade interface {
	PlaylistReader
	PlaylistWriter
}
