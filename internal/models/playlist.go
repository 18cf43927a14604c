package models

import "time"

// Playlist represents a row of the playlists table.
type Playlist struct {
	PlaylistID  string `db:"playlist_id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// PlaylistVideo represents a row of the playlist_videos join table.
type PlaylistVideo struct {
	PlaylistID string    `db:"playlist_id"`
	VideoID    string    `db:"video_id"`
	AddedAt    time.Time `db:"added_at"`
}
