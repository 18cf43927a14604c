package services

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a long-lived refresh token for the user and
	// persists its hash, replacing any previously stored token.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// RotateTokens validates an incoming refresh token, atomically replaces the
	// stored token with a fresh one and returns a new token pair. Every failure
	// mode surfaces as apperrors.ErrUnauthorized.
	RotateTokens(ctx context.Context, refreshTokenString string) (*domain.User, *TokenPair, error)

	// Logout invalidates the stored refresh token for a user.
	Logout(ctx context.Context, userID string) error
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
	// FindOrCreateUser resolves the local account for a Google identity,
	// provisioning one on first login.
	FindOrCreateUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}
