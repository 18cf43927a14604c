package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// CreateVideoRequest defines the payload for publishing a new video.
type CreateVideoRequest struct {
	Title           string  `json:"title" binding:"required,max=200"`
	Description     string  `json:"description" binding:"max=5000"`
	VideoURL        string  `json:"videoUrl" binding:"required,url"`
	ThumbnailURL    string  `json:"thumbnailUrl" binding:"required,url"`
	DurationSeconds float64 `json:"durationSeconds" binding:"gte=0"`
}

// UpdateVideoRequest defines the data allowed for updating a video.
type UpdateVideoRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,url"`
}

// ListVideosRequest defines query parameters for listing published videos.
type ListVideosRequest struct {
	PaginationParams
	Query    string `form:"query"`
	UserID   string `form:"userId"`
	SortBy   string `form:"sortBy,default=createdAt" binding:"omitempty,oneof=createdAt views durationSeconds"`
	SortType string `form:"sortType,default=desc" binding:"omitempty,oneof=asc desc"`
}

// VideoResponse is the public representation of a video.
type VideoResponse struct {
	VideoID         string    `json:"videoId"`
	OwnerID         string    `json:"ownerId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"videoUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	DurationSeconds float64   `json:"durationSeconds"`
	Views           int64     `json:"views"`
	IsPublished     bool      `json:"isPublished"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToVideoResponse converts a domain.Video.
func ToVideoResponse(v *domain.Video) VideoResponse {
	return VideoResponse{
		VideoID:         v.VideoID,
		OwnerID:         v.OwnerID,
		Title:           v.Title,
		Description:     v.Description,
		VideoURL:        v.VideoURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		IsPublished:     v.IsPublished,
		CreatedAt:       v.CreatedAt,
	}
}

// VideoWithOwnerResponse is a video with its uploader's summary joined in.
type VideoWithOwnerResponse struct {
	VideoResponse
	Owner OwnerResponse `json:"owner"`
}

// ToVideoWithOwnerResponse converts a domain.VideoWithOwner.
func ToVideoWithOwnerResponse(v *domain.VideoWithOwner) VideoWithOwnerResponse {
	return VideoWithOwnerResponse{
		VideoResponse: ToVideoResponse(&v.Video),
		Owner:         ToOwnerResponse(v.Owner),
	}
}

// VideoSummaryResponse is the compact video projection used in playlists and
// liked-video listings.
type VideoSummaryResponse struct {
	VideoID         string  `json:"videoId"`
	Title           string  `json:"title"`
	ThumbnailURL    string  `json:"thumbnailUrl"`
	DurationSeconds float64 `json:"durationSeconds"`
	Views           int64   `json:"views"`
}

// ToVideoSummaryResponse converts a domain.VideoSummary.
func ToVideoSummaryResponse(v domain.VideoSummary) VideoSummaryResponse {
	return VideoSummaryResponse{
		VideoID:         v.VideoID,
		Title:           v.Title,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
	}
}

// ListVideosResponse wraps a page of videos with the total match count.
type ListVideosResponse struct {
	Videos     []VideoWithOwnerResponse `json:"videos"`
	TotalCount int64                    `json:"totalCount"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
}

// ToListVideosResponse converts a page of videos to its public form.
func ToListVideosResponse(videos []domain.VideoWithOwner, total int64, page, limit int) ListVideosResponse {
	out := make([]VideoWithOwnerResponse, len(videos))
	for i := range videos {
		out[i] = ToVideoWithOwnerResponse(&videos[i])
	}
	return ListVideosResponse{
		Videos:     out,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}
}
