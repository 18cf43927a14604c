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

type TweetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTweetRepository
	service  portssvc.TweetSvcFacade
}

func (suite *TweetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTweetRepository)
	suite.service = services.NewTweetService(suite.mockRepo)
}

func (suite *TweetServiceTestSuite) TestCreateTweet_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateTweetRequest{Content: "shipping today"}

	suite.mockRepo.On("SaveTweet", ctx, mock.MatchedBy(func(t domain.Tweet) bool {
		return t.OwnerID == ownerID && t.Content == req.Content && t.TweetID != "" && t.CreatedBy == ownerID
	})).Return(nil).Once()

	tweet, err := suite.service.CreateTweet(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(tweet.TweetID)
	suite.Equal(req.Content, tweet.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TweetServiceTestSuite) TestUpdateTweet_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	tweet := &domain.Tweet{TweetID: uuid.NewString(), OwnerID: ownerID, Content: "draft"}

	suite.mockRepo.On("FindTweetByID", ctx, tweet.TweetID).Return(tweet, nil).Once()
	suite.mockRepo.On("UpdateTweet", ctx, mock.MatchedBy(func(t domain.Tweet) bool {
		return t.TweetID == tweet.TweetID && t.Content == "final" && t.LastUpdatedBy == ownerID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTweet(ctx, tweet.TweetID, ownerID, dto.UpdateTweetRequest{Content: "final"})

	suite.Require().NoError(err)
	suite.Equal("final", updated.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TweetServiceTestSuite) TestUpdateTweet_NotOwner() {
	ctx := context.Background()
	tweet := &domain.Tweet{TweetID: uuid.NewString(), OwnerID: uuid.NewString(), Content: "mine"}

	suite.mockRepo.On("FindTweetByID", ctx, tweet.TweetID).Return(tweet, nil).Once()

	updated, err := suite.service.UpdateTweet(ctx, tweet.TweetID, uuid.NewString(), dto.UpdateTweetRequest{Content: "not yours"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTweet", mock.Anything, mock.Anything)
}

func (suite *TweetServiceTestSuite) TestDeleteTweet_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	tweet := &domain.Tweet{TweetID: uuid.NewString(), OwnerID: ownerID}

	suite.mockRepo.On("FindTweetByID", ctx, tweet.TweetID).Return(tweet, nil).Once()
	suite.mockRepo.On("DeleteTweet", ctx, tweet.TweetID).Return(nil).Once()

	err := suite.service.DeleteTweet(ctx, tweet.TweetID, ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TweetServiceTestSuite) TestDeleteTweet_NotFound() {
	ctx := context.Background()
	tweetID := uuid.NewString()

	suite.mockRepo.On("FindTweetByID", ctx, tweetID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTweet(ctx, tweetID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTweet", mock.Anything, mock.Anything)
}

func (suite *TweetServiceTestSuite) TestListUserTweets() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expected := []domain.TweetWithOwner{
		{Tweet: domain.Tweet{TweetID: uuid.NewString(), OwnerID: ownerID, Content: "hello"}},
	}

	suite.mockRepo.On("ListTweetsByOwner", ctx, ownerID, 10, 0).Return(expected, nil).Once()

	tweets, err := suite.service.ListUserTweets(ctx, ownerID, 10, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, tweets)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTweetService(t *testing.T) {
	suite.Run(t, new(TweetServiceTestSuite))
}
