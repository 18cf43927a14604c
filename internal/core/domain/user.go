package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the platform in the domain.
// A user is also a channel: videos, tweets and playlists hang off it,
// and subscriptions point at it.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	FullName       string       `json:"fullName"`
	PasswordHash   *string      `json:"-"` // nil for provider-managed accounts
	AvatarURL      string       `json:"avatarURL"`
	CoverImageURL  *string      `json:"coverImageURL,omitempty"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	IsVerified     bool         `json:"isVerified"`

	// Refresh token state. At most one active refresh token per user;
	// only the token service and logout mutate these.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// OwnerSummary is the minimal public projection of a user, used when
// joining owner details onto videos, tweets, comments and playlists.
type OwnerSummary struct {
	UserID    string `json:"userID"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarURL"`
}

// GoogleUserInfo holds the user details returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
