package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	FullName       string         `db:"full_name"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AvatarURL      string         `db:"avatar_url"`
	CoverImageURL  sql.NullString `db:"cover_image_url"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	IsVerified     bool           `db:"is_verified"`

	// Refresh token state: hash of the single active refresh token and its expiry.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
