package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type VideoServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockVideoRepository
	mockHistory *MockWatchHistorySvc
	service     portssvc.VideoSvcFacade
}

func (suite *VideoServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVideoRepository)
	suite.mockHistory = new(MockWatchHistorySvc)
	suite.service = services.NewVideoService(suite.mockRepo, suite.mockHistory)
}

func (suite *VideoServiceTestSuite) publishedVideo(ownerID string) *domain.VideoWithOwner {
	return &domain.VideoWithOwner{
		Video: domain.Video{
			VideoID:     uuid.NewString(),
			OwnerID:     ownerID,
			Title:       "Test Upload",
			Views:       41,
			IsPublished: true,
		},
		Owner: domain.OwnerSummary{UserID: ownerID, Username: "uploader"},
	}
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_AnonymousViewer() {
	ctx := context.Background()
	video := suite.publishedVideo(uuid.NewString())

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, "")

	suite.Require().NoError(err)
	suite.Equal(int64(41), got.Views)
	// Anonymous views are not counted and leave no history.
	suite.mockRepo.AssertNotCalled(suite.T(), "IncrementViews", mock.Anything, mock.Anything)
	suite.mockHistory.AssertNotCalled(suite.T(), "RecordWatchEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_IdentifiedViewerCountsView() {
	ctx := context.Background()
	video := suite.publishedVideo(uuid.NewString())
	viewerID := uuid.NewString()

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()
	suite.mockRepo.On("IncrementViews", ctx, video.VideoID).Return(nil).Once()
	suite.mockHistory.On("RecordWatchEvent", ctx, viewerID, video.VideoID).Return(nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, viewerID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), got.Views)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_OwnerViewNotCounted() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	video := suite.publishedVideo(ownerID)

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, ownerID)

	suite.Require().NoError(err)
	suite.Equal(int64(41), got.Views)
	suite.mockRepo.AssertNotCalled(suite.T(), "IncrementViews", mock.Anything, mock.Anything)
	suite.mockHistory.AssertNotCalled(suite.T(), "RecordWatchEvent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_UnpublishedHiddenFromOthers() {
	ctx := context.Background()
	video := suite.publishedVideo(uuid.NewString())
	video.IsPublished = false

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	// Indistinguishable from a missing video.
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_UnpublishedVisibleToOwner() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	video := suite.publishedVideo(ownerID)
	video.IsPublished = false

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, ownerID)

	suite.Require().NoError(err)
	suite.Equal(video.VideoID, got.VideoID)
}

func (suite *VideoServiceTestSuite) TestGetVideoByID_ViewCountFailureIsNotFatal() {
	ctx := context.Background()
	video := suite.publishedVideo(uuid.NewString())
	viewerID := uuid.NewString()

	suite.mockRepo.On("FindVideoWithOwner", ctx, video.VideoID).Return(video, nil).Once()
	suite.mockRepo.On("IncrementViews", ctx, video.VideoID).Return(assert.AnError).Once()
	suite.mockHistory.On("RecordWatchEvent", ctx, viewerID, video.VideoID).Return(nil).Once()

	got, err := suite.service.GetVideoByID(ctx, video.VideoID, viewerID)

	suite.Require().NoError(err)
	suite.Equal(int64(41), got.Views)
}

func (suite *VideoServiceTestSuite) TestListVideos_BuildsPublishedOnlyQuery() {
	ctx := context.Background()
	req := dto.ListVideosRequest{
		Query:    "gophers",
		SortBy:   "views",
		SortType: "asc",
	}
	req.Page = 2
	req.Limit = 5

	suite.mockRepo.On("ListVideos", ctx, mock.MatchedBy(func(q domain.VideoListQuery) bool {
		return q.Query == "gophers" &&
			q.SortBy == "views" &&
			q.SortAsc &&
			q.OnlyPublished &&
			q.Limit == 5 &&
			q.Offset == 5
	})).Return([]domain.VideoWithOwner{}, int64(0), nil).Once()

	_, total, err := suite.service.ListVideos(ctx, req)

	suite.Require().NoError(err)
	suite.Zero(total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestPublishVideo_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateVideoRequest{
		Title:           "New Video",
		VideoURL:        "https://cdn.example.com/v.mp4",
		ThumbnailURL:    "https://cdn.example.com/t.jpg",
		DurationSeconds: 93.5,
	}

	suite.mockRepo.On("SaveVideo", ctx, mock.MatchedBy(func(v domain.Video) bool {
		return v.OwnerID == ownerID && v.IsPublished && v.Title == req.Title
	})).Return(nil).Once()

	video, err := suite.service.PublishVideo(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(video.VideoID)
	suite.Equal(ownerID, video.CreatedBy)
	suite.WithinDuration(time.Now(), video.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_NotOwner() {
	ctx := context.Background()
	video := &domain.Video{VideoID: uuid.NewString(), OwnerID: uuid.NewString()}
	newTitle := "Hijacked"

	suite.mockRepo.On("FindVideoByID", ctx, video.VideoID).Return(video, nil).Once()

	updated, err := suite.service.UpdateVideo(ctx, video.VideoID, uuid.NewString(), dto.UpdateVideoRequest{Title: &newTitle})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVideo", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestTogglePublishStatus_Flips() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	video := &domain.Video{VideoID: uuid.NewString(), OwnerID: ownerID, IsPublished: true}

	suite.mockRepo.On("FindVideoByID", ctx, video.VideoID).Return(video, nil).Once()
	suite.mockRepo.On("SetPublishStatus", ctx, video.VideoID, false, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	toggled, err := suite.service.TogglePublishStatus(ctx, video.VideoID, ownerID)

	suite.Require().NoError(err)
	suite.False(toggled.IsPublished)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) TestDeleteVideo_SoftDeletes() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	video := &domain.Video{VideoID: uuid.NewString(), OwnerID: ownerID}

	suite.mockRepo.On("FindVideoByID", ctx, video.VideoID).Return(video, nil).Once()
	suite.mockRepo.On("MarkVideoDeleted", ctx, video.VideoID, mock.AnythingOfType("time.Time"), ownerID).Return(nil).Once()

	err := suite.service.DeleteVideo(ctx, video.VideoID, ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestVideoService(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
