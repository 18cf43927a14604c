package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type commentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	videoRepo   portsrepo.VideoRepositoryFacade
}

// NewCommentService creates the comment service. The video repository backs
// existence checks and the video-owner moderation rule.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, videoRepo portsrepo.VideoRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

func (s *commentService) AddComment(ctx context.Context, videoID string, ownerID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return nil, fmt.Errorf("failed to load video for comment: %w", err)
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		VideoID:   videoID,
		OwnerID:   ownerID,
		Content:   req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &comment, nil
}

func (s *commentService) ListVideoComments(ctx context.Context, videoID string, limit int, offset int) ([]domain.CommentWithOwner, int64, error) {
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return nil, 0, fmt.Errorf("failed to load video for comments: %w", err)
	}

	comments, total, err := s.commentRepo.ListCommentsByVideo(ctx, videoID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, ownerID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != ownerID {
		return nil, fmt.Errorf("not the comment owner: %w", apperrors.ErrForbidden)
	}

	comment.Content = req.Content
	comment.LastUpdatedAt = time.Now()
	comment.LastUpdatedBy = ownerID

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment allows the comment author or the owner of the commented video
// to remove a comment.
func (s *commentService) DeleteComment(ctx context.Context, commentID string, requestingUserID string) error {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.OwnerID != requestingUserID {
		video, err := s.videoRepo.FindVideoByID(ctx, comment.VideoID)
		if err != nil {
			return fmt.Errorf("failed to load video for comment moderation: %w", err)
		}
		if video.OwnerID != requestingUserID {
			return fmt.Errorf("not the comment or video owner: %w", apperrors.ErrForbidden)
		}
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
