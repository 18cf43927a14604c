package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelVideo converts a domain Video to a model Video.
func ToModelVideo(d domain.Video) models.Video {
	return models.Video{
		VideoID:         d.VideoID,
		OwnerID:         d.OwnerID,
		Title:           d.Title,
		Description:     d.Description,
		VideoURL:        d.VideoURL,
		ThumbnailURL:    d.ThumbnailURL,
		DurationSeconds: d.DurationSeconds,
		Views:           d.Views,
		IsPublished:     d.IsPublished,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

// ToDomainVideo converts a model Video to a domain Video.
func ToDomainVideo(m models.Video) domain.Video {
	return domain.Video{
		VideoID:         m.VideoID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		VideoURL:        m.VideoURL,
		ThumbnailURL:    m.ThumbnailURL,
		DurationSeconds: m.DurationSeconds,
		Views:           m.Views,
		IsPublished:     m.IsPublished,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}
