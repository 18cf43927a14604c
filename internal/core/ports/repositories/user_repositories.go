package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider retrieves a user by OAuth provider and the provider's subject ID.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// GetChannelProfile retrieves the public channel profile for a username,
	// including subscriber cardinalities and whether viewerUserID subscribes to it.
	// viewerUserID may be empty for anonymous viewers.
	GetChannelProfile(ctx context.Context, username string, viewerUserID string) (*domain.ChannelProfile, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserTokenWriter defines operations on the stored refresh token state
type UserTokenWriter interface {
	// UpdateRefreshToken replaces the stored refresh token hash and expiry for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// RotateRefreshToken swaps oldTokenHash for newTokenHash atomically.
	// It returns apperrors.ErrNotFound when the stored hash no longer matches
	// oldTokenHash, which means the token was already rotated or cleared.
	RotateRefreshToken(ctx context.Context, userID string, oldTokenHash string, newTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// WatchHistoryManager defines operations on a user's watch history
type WatchHistoryManager interface {
	// UpsertWatchHistory records that a user watched a video, refreshing the
	// watched-at timestamp when the entry already exists.
	UpsertWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error

	// FindWatchHistory retrieves a user's watch history, most recent first,
	// with each video's owner summary joined in.
	FindWatchHistory(ctx context.Context, userID string, limit int, offset int) ([]domain.WatchHistoryEntry, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTokenWriter
	UserLifecycleManager
	WatchHistoryManager
}
