package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetChannelProfile retrieves the public channel profile for a username.
	// viewerUserID may be empty for anonymous viewers.
	GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new local user account.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateAccountDetails updates the requesting user's profile fields.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a hash of the new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// DeleteAccount soft-deletes the requesting user's account and revokes
	// the stored refresh token.
	DeleteAccount(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user by username or email plus password.
	AuthenticateUser(ctx context.Context, identifier string, password string) (*domain.User, error)
}

// WatchHistorySvc defines operations on a user's watch history
type WatchHistorySvc interface {
	// RecordWatchEvent notes that a user watched a video.
	RecordWatchEvent(ctx context.Context, userID string, videoID string) error

	// GetWatchHistory retrieves a user's watch history, most recent first.
	GetWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	WatchHistorySvc
}
