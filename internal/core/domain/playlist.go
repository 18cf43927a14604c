package domain

// Playlist represents a named, ordered collection of videos owned by a user.
type Playlist struct {
	PlaylistID  string `json:"playlistID"` // Primary Key (UUID)
	OwnerID     string `json:"ownerID"`    // FK -> users.user_id
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// PlaylistWithVideos is a playlist joined with its owner profile and
// the summaries of its member videos, in insertion order.
type PlaylistWithVideos struct {
	Playlist
	Owner  OwnerSummary   `json:"owner"`
	Videos []VideoSummary `json:"videos"`
}
