package dto

// RegisterUserRequest defines the payload for creating a local account.
type RegisterUserRequest struct {
	Username      string `json:"username" binding:"required,min=3,max=30,username"`
	Email         string `json:"email" binding:"required,email"`
	FullName      string `json:"fullName" binding:"required,max=100"`
	Password      string `json:"password" binding:"required,min=8,max=72"`
	AvatarURL     string `json:"avatarUrl" binding:"omitempty,url"`
	CoverImageURL string `json:"coverImageUrl" binding:"omitempty,url"`
}

// LoginRequest defines the payload for credential login. Either username or
// email identifies the account; password is always required.
type LoginRequest struct {
	Username string `json:"username" binding:"required_without=Email"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns the account identifier to look up, preferring username.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// RefreshTokenRequest carries the refresh token when the client sends it in
// the body instead of the cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// GoogleIDTokenRequest carries a Google ID token obtained client-side
// (mobile or SPA flow).
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ChangePasswordRequest defines the payload for changing the current password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// LoginResponse is returned on successful login and token refresh.
type LoginResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}
