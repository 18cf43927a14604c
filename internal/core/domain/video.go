package domain

import "time"

// Video represents an uploaded video within the core domain.
type Video struct {
	VideoID         string  `json:"videoID"` // Primary Key (UUID)
	OwnerID         string  `json:"ownerID"` // FK -> users.user_id
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	VideoURL        string  `json:"videoURL"`
	ThumbnailURL    string  `json:"thumbnailURL"`
	DurationSeconds float64 `json:"durationSeconds"`
	Views           int64   `json:"views"`
	IsPublished     bool    `json:"isPublished"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// VideoWithOwner is a video joined with the minimal profile of its uploader.
type VideoWithOwner struct {
	Video
	Owner OwnerSummary `json:"owner"`
}

// VideoSummary is the minimal projection of a video used inside playlists
// and liked-video listings.
type VideoSummary struct {
	VideoID         string  `json:"videoID"`
	Title           string  `json:"title"`
	ThumbnailURL    string  `json:"thumbnailURL"`
	DurationSeconds float64 `json:"durationSeconds"`
	Views           int64   `json:"views"`
}

// VideoListQuery captures the filter/sort/pagination inputs for listing videos.
type VideoListQuery struct {
	Query         string // free-text match against title/description
	OwnerID       string // optional filter by uploader
	SortBy        string // createdAt, views, durationSeconds
	SortAsc       bool
	Limit         int
	Offset        int
	OnlyPublished bool
}
