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
	"github.com/vidtube/vidtube_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) localUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "creator_one",
		Email:        "creator@example.com",
		FullName:     "Creator One",
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
	}
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username:  "new_user",
		Email:     "new@example.com",
		Password:  "s3cretpass",
		FullName:  "New User",
		AvatarURL: "https://cdn.example.com/avatar.png",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username &&
			u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != nil &&
			*u.PasswordHash != req.Password && // never stored in the clear
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Username, user.Username)
	suite.Nil(user.CoverImageURL)
	suite.True(utils.CheckPasswordHash(req.Password, *user.PasswordHash))
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "s3cretpass",
		FullName: "Taken",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_ByUsername() {
	ctx := context.Background()
	user := suite.localUser("correct-horse")

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Username, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_EmailFallback() {
	ctx := context.Background()
	user := suite.localUser("correct-horse")

	suite.mockRepo.On("FindUserByUsername", ctx, user.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownIdentifier() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := suite.localUser("correct-horse")

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Username, "wrong-horse")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_ProviderManagedAccount() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "google_user",
		AuthProvider: domain.ProviderGoogle,
		PasswordHash: nil,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Username, "anything")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateAccountDetails_PartialUpdate() {
	ctx := context.Background()
	user := suite.localUser("irrelevant")
	originalEmail := user.Email

	newName := "Renamed Creator"
	req := dto.UpdateAccountRequest{FullName: &newName}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FullName == newName && u.Email == originalEmail && u.LastUpdatedBy == user.UserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccountDetails(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
	suite.Equal(originalEmail, updated.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := suite.localUser("old-password")
	req := dto.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password"}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash != nil && utils.CheckPasswordHash("new-password", *u.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongOldPassword() {
	ctx := context.Background()
	user := suite.localUser("old-password")
	req := dto.ChangePasswordRequest{OldPassword: "not-the-old-one", NewPassword: "new-password"}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_NoLocalPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), AuthProvider: domain.ProviderGoogle}
	req := dto.ChangePasswordRequest{OldPassword: "x", NewPassword: "y"}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, req)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteAccount_RevokesRefreshToken() {
	ctx := context.Background()
	user := suite.localUser("irrelevant")

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", ctx, user.UserID, mock.AnythingOfType("time.Time"), user.UserID).Return(nil).Once()
	suite.mockRepo.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteAccount_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetChannelProfile_PassesViewer() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	expected := &domain.ChannelProfile{
		UserID:          uuid.NewString(),
		Username:        "channel_one",
		SubscriberCount: 12,
		IsSubscribed:    true,
	}

	suite.mockRepo.On("GetChannelProfile", ctx, "channel_one", viewerID).Return(expected, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "channel_one", viewerID)

	suite.Require().NoError(err)
	suite.Equal(expected, profile)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRecordWatchEvent_Upserts() {
	ctx := context.Background()
	userID := uuid.NewString()
	videoID := uuid.NewString()

	suite.mockRepo.On("UpsertWatchHistory", ctx, userID, videoID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RecordWatchEvent(ctx, userID, videoID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetWatchHistory_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindWatchHistory", ctx, userID, 10, 0).Return(nil, assert.AnError).Once()

	entries, err := suite.service.GetWatchHistory(ctx, userID, 10, 0)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
