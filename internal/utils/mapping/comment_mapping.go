package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelComment converts a domain Comment to a model Comment.
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID: d.CommentID,
		VideoID:   d.VideoID,
		OwnerID:   d.OwnerID,
		Content:   d.Content,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainComment converts a model Comment to a domain Comment.
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
