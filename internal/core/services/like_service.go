package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

type likeService struct {
	BaseService
	likeRepo    portsrepo.LikeRepositoryFacade
	videoRepo   portsrepo.VideoRepositoryFacade
	commentRepo portsrepo.CommentRepositoryFacade
	tweetRepo   portsrepo.TweetRepositoryFacade
}

// NewLikeService creates the like service. Target repositories back the
// existence check before a like lands.
func NewLikeService(
	likeRepo portsrepo.LikeRepositoryFacade,
	videoRepo portsrepo.VideoRepositoryFacade,
	commentRepo portsrepo.CommentRepositoryFacade,
	tweetRepo portsrepo.TweetRepositoryFacade,
) portssvc.LikeSvcFacade {
	return &likeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

var _ portssvc.LikeSvcFacade = (*likeService)(nil)

func (s *likeService) targetExists(ctx context.Context, kind domain.LikeTargetKind, targetID string) error {
	var err error
	switch kind {
	case domain.LikeTargetVideo:
		_, err = s.videoRepo.FindVideoByID(ctx, targetID)
	case domain.LikeTargetComment:
		_, err = s.commentRepo.FindCommentByID(ctx, targetID)
	case domain.LikeTargetTweet:
		_, err = s.tweetRepo.FindTweetByID(ctx, targetID)
	default:
		return fmt.Errorf("%w: unknown like target kind %q", apperrors.ErrBadRequest, kind)
	}
	return err
}

// ToggleLike flips the like state for a target. Repeating the call flips it
// back; the result reports the state after this call.
func (s *likeService) ToggleLike(ctx context.Context, userID string, kind domain.LikeTargetKind, targetID string) (bool, error) {
	if err := s.targetExists(ctx, kind, targetID); err != nil {
		return false, fmt.Errorf("failed to load like target: %w", err)
	}

	existing, err := s.likeRepo.FindLike(ctx, userID, kind, targetID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("failed to look up existing like: %w", err)
	}

	if existing != nil {
		if err := s.likeRepo.DeleteLike(ctx, existing.LikeID); err != nil {
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		return false, nil
	}

	like := domain.Like{
		LikeID:    uuid.NewString(),
		LikedBy:   userID,
		CreatedAt: time.Now(),
	}
	target := targetID
	switch kind {
	case domain.LikeTargetVideo:
		like.VideoID = &target
	case domain.LikeTargetComment:
		like.CommentID = &target
	case domain.LikeTargetTweet:
		like.TweetID = &target
	}

	if err := s.likeRepo.SaveLike(ctx, like); err != nil {
		return false, fmt.Errorf("failed to save like: %w", err)
	}
	return true, nil
}

func (s *likeService) ListLikedVideos(ctx context.Context, userID string, limit int, offset int) ([]domain.LikedVideo, error) {
	liked, err := s.likeRepo.ListLikedVideos(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	return liked, nil
}
