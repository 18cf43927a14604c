package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ToggleLikeResponse reports the like state after a toggle.
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// LikedVideoResponse is one entry of a user's liked-video listing.
type LikedVideoResponse struct {
	LikeID  string               `json:"likeId"`
	Video   VideoSummaryResponse `json:"video"`
	Owner   OwnerResponse        `json:"owner"`
	LikedAt time.Time            `json:"likedAt"`
}

// ToLikedVideosResponse converts liked-video entries to their public form.
func ToLikedVideosResponse(likes []domain.LikedVideo) []LikedVideoResponse {
	out := make([]LikedVideoResponse, len(likes))
	for i, l := range likes {
		out[i] = LikedVideoResponse{
			LikeID:  l.LikeID,
			Video:   ToVideoSummaryResponse(l.Video),
			Owner:   ToOwnerResponse(l.Owner),
			LikedAt: l.LikedAt,
		}
	}
	return out
}
