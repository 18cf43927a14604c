package models

import "time"

// Video represents a row of the videos table.
type Video struct {
	VideoID         string  `db:"video_id"`
	OwnerID         string  `db:"owner_id"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	VideoURL        string  `db:"video_url"`
	ThumbnailURL    string  `db:"thumbnail_url"`
	DurationSeconds float64 `db:"duration_seconds"`
	Views           int64   `db:"views"`
	IsPublished     bool    `db:"is_published"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
