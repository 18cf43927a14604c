package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID string, oldTokenHash string, newTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, oldTokenHash, newTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	args := m.Called(ctx, userID, videoID, watchedAt)
	return args.Error(0)
}

func (m *MockUserRepository) FindWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchHistoryEntry), args.Error(1)
}

// MockVideoRepository is a mock type for the VideoRepositoryFacade interface
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindVideoWithOwner(ctx context.Context, videoID string) (*domain.VideoWithOwner, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) ListVideos(ctx context.Context, q domain.VideoListQuery) ([]domain.VideoWithOwner, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.VideoWithOwner), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateVideo(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) SetPublishStatus(ctx context.Context, videoID string, isPublished bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, videoID, isPublished, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) MarkVideoDeleted(ctx context.Context, videoID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, videoID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockCommentRepository is a mock type for the CommentRepositoryFacade interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListCommentsByVideo(ctx context.Context, videoID string, limit int, offset int) ([]domain.CommentWithOwner, int64, error) {
	args := m.Called(ctx, videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CommentWithOwner), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// MockTweetRepository is a mock type for the TweetRepositoryFacade interface
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListTweetsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.TweetWithOwner, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TweetWithOwner), args.Error(1)
}

func (m *MockTweetRepository) SaveTweet(ctx context.Context, tweet domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) UpdateTweet(ctx context.Context, tweet domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) DeleteTweet(ctx context.Context, tweetID string) error {
	args := m.Called(ctx, tweetID)
	return args.Error(0)
}

// MockLikeRepository is a mock type for the LikeRepositoryFacade interface
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) FindLike(ctx context.Context, likedBy string, kind domain.LikeTargetKind, targetID string) (*domain.Like, error) {
	args := m.Called(ctx, likedBy, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Like), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, userID string, limit int, offset int) ([]domain.LikedVideo, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LikedVideo), args.Error(1)
}

func (m *MockLikeRepository) SaveLike(ctx context.Context, like domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLike(ctx context.Context, likeID string) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock type for the SubscriptionRepositoryFacade interface
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindSubscription(ctx context.Context, channelID string, subscriberID string) (*domain.Subscription, error) {
	args := m.Called(ctx, channelID, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string, limit int, offset int) ([]domain.OwnerSummary, error) {
	args := m.Called(ctx, channelID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerSummary), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string, limit int, offset int) ([]domain.OwnerSummary, error) {
	args := m.Called(ctx, subscriberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerSummary), args.Error(1)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

// MockWatchHistorySvc is a mock type for the WatchHistorySvc interface
type MockWatchHistorySvc struct {
	mock.Mock
}

func (m *MockWatchHistorySvc) RecordWatchEvent(ctx context.Context, userID string, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockWatchHistorySvc) GetWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchHistoryEntry), args.Error(1)
}

// MockPlaylistRepository is a mock type for the PlaylistRepositoryFacade interface
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.PlaylistWithVideos, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistWithVideos), args.Error(1)
}

func (m *MockPlaylistRepository) ListPlaylistsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Playlist, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideoToPlaylist(ctx context.Context, playlistID string, videoID string, addedAt time.Time) error {
	args := m.Called(ctx, playlistID, videoID, addedAt)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideoFromPlaylist(ctx context.Context, playlistID string, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

// MockDashboardRepository is a mock type for the DashboardRepository interface
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelStats), args.Error(1)
}

func (m *MockDashboardRepository) ListChannelVideos(ctx context.Context, channelID string, limit int, offset int) ([]domain.Video, error) {
	args := m.Called(ctx, channelID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}
