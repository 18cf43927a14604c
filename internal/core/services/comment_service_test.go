package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type CommentServiceTestSuite struct {
	suite.Suite
	mockCommentRepo *MockCommentRepository
	mockVideoRepo   *MockVideoRepository
	service         portssvc.CommentSvcFacade
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.mockCommentRepo = new(MockCommentRepository)
	suite.mockVideoRepo = new(MockVideoRepository)
	suite.service = services.NewCommentService(suite.mockCommentRepo, suite.mockVideoRepo)
}

func (suite *CommentServiceTestSuite) TestAddComment_Success() {
	ctx := context.Background()
	videoID := uuid.NewString()
	ownerID := uuid.NewString()
	req := dto.CreateCommentRequest{Content: "great video"}

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(&domain.Video{VideoID: videoID}, nil).Once()
	suite.mockCommentRepo.On("SaveComment", ctx, mock.MatchedBy(func(c domain.Comment) bool {
		return c.VideoID == videoID && c.OwnerID == ownerID && c.Content == req.Content
	})).Return(nil).Once()

	comment, err := suite.service.AddComment(ctx, videoID, ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(comment.CommentID)
	suite.mockCommentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestAddComment_VideoMissing() {
	ctx := context.Background()
	videoID := uuid.NewString()

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(nil, apperrors.ErrNotFound).Once()

	comment, err := suite.service.AddComment(ctx, videoID, uuid.NewString(), dto.CreateCommentRequest{Content: "hi"})

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "SaveComment", mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_NotOwner() {
	ctx := context.Background()
	comment := &domain.Comment{CommentID: uuid.NewString(), OwnerID: uuid.NewString(), Content: "original"}

	suite.mockCommentRepo.On("FindCommentByID", ctx, comment.CommentID).Return(comment, nil).Once()

	updated, err := suite.service.UpdateComment(ctx, comment.CommentID, uuid.NewString(), dto.UpdateCommentRequest{Content: "edited"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "UpdateComment", mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestDeleteComment_ByAuthor() {
	ctx := context.Background()
	authorID := uuid.NewString()
	comment := &domain.Comment{CommentID: uuid.NewString(), VideoID: uuid.NewString(), OwnerID: authorID}

	suite.mockCommentRepo.On("FindCommentByID", ctx, comment.CommentID).Return(comment, nil).Once()
	suite.mockCommentRepo.On("DeleteComment", ctx, comment.CommentID).Return(nil).Once()

	err := suite.service.DeleteComment(ctx, comment.CommentID, authorID)

	suite.Require().NoError(err)
	// The author needs no video lookup.
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "FindVideoByID", mock.Anything, mock.Anything)
	suite.mockCommentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestDeleteComment_ByVideoOwner() {
	ctx := context.Background()
	videoOwnerID := uuid.NewString()
	comment := &domain.Comment{CommentID: uuid.NewString(), VideoID: uuid.NewString(), OwnerID: uuid.NewString()}

	suite.mockCommentRepo.On("FindCommentByID", ctx, comment.CommentID).Return(comment, nil).Once()
	suite.mockVideoRepo.On("FindVideoByID", ctx, comment.VideoID).Return(&domain.Video{VideoID: comment.VideoID, OwnerID: videoOwnerID}, nil).Once()
	suite.mockCommentRepo.On("DeleteComment", ctx, comment.CommentID).Return(nil).Once()

	err := suite.service.DeleteComment(ctx, comment.CommentID, videoOwnerID)

	suite.Require().NoError(err)
	suite.mockCommentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestDeleteComment_Unrelated() {
	ctx := context.Background()
	comment := &domain.Comment{CommentID: uuid.NewString(), VideoID: uuid.NewString(), OwnerID: uuid.NewString()}

	suite.mockCommentRepo.On("FindCommentByID", ctx, comment.CommentID).Return(comment, nil).Once()
	suite.mockVideoRepo.On("FindVideoByID", ctx, comment.VideoID).Return(&domain.Video{VideoID: comment.VideoID, OwnerID: uuid.NewString()}, nil).Once()

	err := suite.service.DeleteComment(ctx, comment.CommentID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "DeleteComment", mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestListVideoComments() {
	ctx := context.Background()
	videoID := uuid.NewString()
	expected := []domain.CommentWithOwner{
		{Comment: domain.Comment{CommentID: uuid.NewString(), VideoID: videoID, Content: "first"}},
	}

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(&domain.Video{VideoID: videoID}, nil).Once()
	suite.mockCommentRepo.On("ListCommentsByVideo", ctx, videoID, 10, 0).Return(expected, int64(27), nil).Once()

	comments, total, err := suite.service.ListVideoComments(ctx, videoID, 10, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, comments)
	suite.Equal(int64(27), total)
	suite.mockCommentRepo.AssertExpectations(suite.T())
}

func TestCommentService(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
