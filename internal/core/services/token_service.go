package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// tokenService implements TokenSvcFacade. Access and refresh tokens are both
// JWTs but signed with distinct secrets; only a SHA-256 hash of the refresh
// token is persisted, one active token per user.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new refresh token for the given user and
// stores its hash, invalidating whatever token was stored before.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, tokenHash, expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return refreshToken, expiryTime, nil
}

// RotateTokens redeems a refresh token for a fresh pair. The swap at the store
// is conditional on the stored hash still matching the presented token, so a
// token redeems at most once even under concurrent requests. The caller only
// ever sees ErrUnauthorized; the specific failure is logged, not returned.
func (s *tokenService) RotateTokens(ctx context.Context, refreshTokenString string) (*domain.User, *portssvc.TokenPair, error) {
	claims, err := utils.ParseAndValidateJWT(refreshTokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		s.LogWarn(ctx, "refresh token rejected: signature or expiry check failed")
		return nil, nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		s.LogWarn(ctx, "refresh token rejected: user lookup failed", "user_id", claims.Subject)
		return nil, nil, apperrors.ErrUnauthorized
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		s.LogWarn(ctx, "refresh token rejected: no stored token", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		s.LogWarn(ctx, "refresh token rejected: stored token expired", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		s.LogWarn(ctx, "refresh token rejected: hash mismatch", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}

	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	newRefreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate replacement refresh token", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}

	err = s.userRepo.RotateRefreshToken(ctx, user.UserID, user.RefreshTokenHash, utils.HashRefreshToken(newRefreshToken), refreshExpiry)
	if err != nil {
		// Lost the swap: someone else redeemed this token first.
		s.LogWarn(ctx, "refresh token rejected: concurrent rotation", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}

	accessToken, accessExpiry, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token after rotation", "user_id", user.UserID)
		return nil, nil, apperrors.ErrUnauthorized
	}

	return user, &portssvc.TokenPair{
		AccessToken:        accessToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshToken:       newRefreshToken,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}

// Logout invalidates the stored refresh token for a user.
func (s *tokenService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token on logout: %w", err)
	}
	s.LogInfo(ctx, "user logged out", "user_id", userID)
	return nil
}
