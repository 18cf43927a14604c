package mapping

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/models"
)

// ToModelLike converts a domain Like to a model Like.
func ToModelLike(d domain.Like) models.Like {
	return models.Like{
		LikeID:    d.LikeID,
		LikedBy:   d.LikedBy,
		VideoID:   ptrToNullString(d.VideoID),
		CommentID: ptrToNullString(d.CommentID),
		TweetID:   ptrToNullString(d.TweetID),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLike converts a model Like to a domain Like.
func ToDomainLike(m models.Like) domain.Like {
	return domain.Like{
		LikeID:    m.LikeID,
		LikedBy:   m.LikedBy,
		VideoID:   nullStringToPtr(m.VideoID),
		CommentID: nullStringToPtr(m.CommentID),
		TweetID:   nullStringToPtr(m.TweetID),
		CreatedAt: m.CreatedAt,
	}
}
