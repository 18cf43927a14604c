package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/handlers"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, identifier string, password string) (*domain.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RecordWatchEvent(ctx context.Context, userID string, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserService) GetWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchHistoryEntry), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) RotateTokens(ctx context.Context, refreshTokenString string) (*domain.User, *portssvc.TokenPair, error) {
	args := m.Called(ctx, refreshTokenString)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*portssvc.TokenPair), args.Error(2)
}

func (m *MockTokenService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	cfg              *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTIssuer:                  "vidtube-test",
		JWTExpiryDuration:          time.Hour,
		RefreshTokenSecret:         "test-refresh-secret-key",
		RefreshTokenExpiryDuration: 240 * time.Hour,
		AccessTokenCookieName:      "accessToken",
		RefreshTokenCookieName:     "refreshToken",
		CookiePath:                 "/",
	}

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	h := handlers.NewAuthHandler(suite.mockUserService, suite.mockTokenService, suite.cfg)

	suite.router = gin.New()
	auth := suite.router.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh-token", h.RefreshToken)
	auth.POST("/logout", middleware.AuthMiddleware(suite.cfg.JWTSecret, suite.cfg.AccessTokenCookieName), h.Logout)
}

// generateTestToken creates a signed access token for authenticated routes.
func (suite *AuthHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AuthHandlerTestSuite) postJSON(url string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) dto.APIResponse {
	var envelope dto.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	suite.Require().NoError(err, "Failed to unmarshal response body")
	return envelope
}

// cookieValue digs a named cookie out of the recorded Set-Cookie headers.
func cookieValue(w *httptest.ResponseRecorder, name string) (string, bool) {
	res := http.Response{Header: w.Header()}
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterUserRequest{
		Username: "new_user",
		Email:    "new@example.com",
		FullName: "New User",
		Password: "s3cretpass",
	}
	created := &domain.User{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}

	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidUsername() {
	req := dto.RegisterUserRequest{
		Username: "Not Valid!",
		Email:    "new@example.com",
		FullName: "New User",
		Password: "s3cretpass",
	}

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	req := dto.RegisterUserRequest{
		Username: "taken",
		Email:    "taken@example.com",
		FullName: "Taken",
		Password: "s3cretpass",
	}

	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusConflict, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
}

func (suite *AuthHandlerTestSuite) TestLogin_SetsAuthCookies() {
	user := &domain.User{UserID: uuid.NewString(), Username: "creator_one"}
	req := dto.LoginRequest{Username: user.Username, Password: "s3cretpass"}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, user.Username, req.Password).Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("access-token", time.Now().Add(time.Hour), nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).Return("refresh-token", time.Now().Add(240*time.Hour), nil).Once()

	w := suite.postJSON("/api/v1/auth/login", req)

	suite.Equal(http.StatusOK, w.Code)

	access, ok := cookieValue(w, suite.cfg.AccessTokenCookieName)
	suite.True(ok, "access token cookie missing")
	suite.Equal("access-token", access)
	refresh, ok := cookieValue(w, suite.cfg.RefreshTokenCookieName)
	suite.True(ok, "refresh token cookie missing")
	suite.Equal("refresh-token", refresh)

	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	req := dto.LoginRequest{Username: "ghost", Password: "whatever"}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "ghost", "whatever").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postJSON("/api/v1/auth/login", req)

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	req := dto.LoginRequest{Username: "creator_one", Password: "wrong"}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "creator_one", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/api/v1/auth/login", req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
}

func (suite *AuthHandlerTestSuite) TestRefreshToken_FromCookie() {
	user := &domain.User{UserID: uuid.NewString(), Username: "creator_one"}
	pair := &portssvc.TokenPair{
		AccessToken:        "new-access",
		AccessTokenExpiry:  time.Now().Add(time.Hour),
		RefreshToken:       "new-refresh",
		RefreshTokenExpiry: time.Now().Add(240 * time.Hour),
	}

	suite.mockTokenService.On("RotateTokens", mock.Anything, "old-refresh").Return(user, pair, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: suite.cfg.RefreshTokenCookieName, Value: "old-refresh"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	refresh, ok := cookieValue(w, suite.cfg.RefreshTokenCookieName)
	suite.True(ok)
	suite.Equal("new-refresh", refresh)
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefreshToken_FromBody() {
	user := &domain.User{UserID: uuid.NewString(), Username: "creator_one"}
	pair := &portssvc.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}

	suite.mockTokenService.On("RotateTokens", mock.Anything, "body-refresh").Return(user, pair, nil).Once()

	w := suite.postJSON("/api/v1/auth/refresh-token", dto.RefreshTokenRequest{RefreshToken: "body-refresh"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefreshToken_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "RotateTokens", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRefreshToken_RotationRejected() {
	suite.mockTokenService.On("RotateTokens", mock.Anything, "stale-refresh").Return(nil, nil, apperrors.ErrUnauthorized).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: suite.cfg.RefreshTokenCookieName, Value: "stale-refresh"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsCookies() {
	userID := uuid.NewString()

	suite.mockTokenService.On("Logout", mock.Anything, userID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	// Both cookies come back expired.
	for _, header := range w.Header().Values("Set-Cookie") {
		suite.True(strings.Contains(header, "Max-Age=0"), "expected expired cookie, got %q", header)
	}
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "Logout", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
