package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelTweet converts a domain Tweet to a model Tweet.
func ToModelTweet(d domain.Tweet) models.Tweet {
	return models.Tweet{
		TweetID: d.TweetID,
		OwnerID: d.OwnerID,
		Content: d.Content,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainTweet converts a model Tweet to a domain Tweet.
func ToDomainTweet(m models.Tweet) domain.Tweet {
	return domain.Tweet{
		TweetID: m.TweetID,
		OwnerID: m.OwnerID,
		Content: m.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
