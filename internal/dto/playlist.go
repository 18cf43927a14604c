package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// CreatePlaylistRequest defines the payload for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdatePlaylistRequest defines the data allowed for updating a playlist.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// PlaylistResponse is the public representation of a playlist without its videos.
type PlaylistResponse struct {
	PlaylistID  string    `json:"playlistId"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToPlaylistResponse converts a domain.Playlist.
func ToPlaylistResponse(p *domain.Playlist) PlaylistResponse {
	return PlaylistResponse{
		PlaylistID:  p.PlaylistID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ToPlaylistListResponse converts a slice of playlists.
func ToPlaylistListResponse(playlists []domain.Playlist) []PlaylistResponse {
	out := make([]PlaylistResponse, len(playlists))
	for i := range playlists {
		out[i] = ToPlaylistResponse(&playlists[i])
	}
	return out
}

// PlaylistWithVideosResponse is a playlist with its owner and videos joined in.
type PlaylistWithVideosResponse struct {
	PlaylistResponse
	Owner  OwnerResponse          `json:"owner"`
	Videos []VideoSummaryResponse `json:"videos"`
}

// ToPlaylistWithVideosResponse converts a domain.PlaylistWithVideos.
func ToPlaylistWithVideosResponse(p *domain.PlaylistWithVideos) PlaylistWithVideosResponse {
	videos := make([]VideoSummaryResponse, len(p.Videos))
	for i, v := range p.Videos {
		videos[i] = ToVideoSummaryResponse(v)
	}
	return PlaylistWithVideosResponse{
		PlaylistResponse: ToPlaylistResponse(&p.Playlist),
		Owner:            ToOwnerResponse(p.Owner),
		Videos:           videos,
	}
}
