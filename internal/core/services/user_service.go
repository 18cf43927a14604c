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
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
		AvatarURL:    req.AvatarURL,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}
	if req.CoverImageURL != "" {
		cover := req.CoverImageURL
		user.CoverImageURL = &cover
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "user registered", "user_id", newUserID, "username", req.Username)
	return &user, nil
}

// AuthenticateUser looks the account up by identifier only, then compares the
// password against the stored hash. An unknown identifier yields ErrNotFound;
// a wrong password yields ErrUnauthorized.
func (s *userService) AuthenticateUser(ctx context.Context, identifier string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, identifier)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.userRepo.FindUserByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no account for identifier: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if user.PasswordHash == nil {
		// Provider-managed account, it has no local password to check.
		return nil, fmt.Errorf("account has no local credentials: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error) {
	profile, err := s.userRepo.GetChannelProfile(ctx, username, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel profile: %w", err)
	}
	return profile, nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.CoverImageURL != nil {
		user.CoverImageURL = req.CoverImageURL
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if user.PasswordHash == nil {
		return apperrors.NewBadRequestError("account has no local password")
	}
	if !utils.CheckPasswordHash(req.OldPassword, *user.PasswordHash) {
		return fmt.Errorf("old password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = &newHash
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to persist new password: %w", err)
	}

	s.LogInfo(ctx, "password changed", "user_id", userID)
	return nil
}

// DeleteAccount soft-deletes the account and revokes the stored refresh
// token so no further rotation can succeed.
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to load user for deletion: %w", err)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.LogInfo(ctx, "account deleted", "user_id", userID)
	return nil
}

func (s *userService) RecordWatchEvent(ctx context.Context, userID string, videoID string) error {
	if err := s.userRepo.UpsertWatchHistory(ctx, userID, videoID, time.Now()); err != nil {
		return fmt.Errorf("failed to record watch event: %w", err)
	}
	return nil
}

func (s *userService) GetWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error) {
	entries, err := s.userRepo.FindWatchHistory(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get watch history: %w", err)
	}
	return entries, nil
}
