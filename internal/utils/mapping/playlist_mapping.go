package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelPlaylist converts a domain Playlist to a model Playlist.
func ToModelPlaylist(d domain.Playlist) models.Playlist {
	return models.Playlist{
		PlaylistID:  d.PlaylistID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainPlaylist converts a model Playlist to a domain Playlist.
func ToDomainPlaylist(m models.Playlist) domain.Playlist {
	return domain.Playlist{
		PlaylistID:  m.PlaylistID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
