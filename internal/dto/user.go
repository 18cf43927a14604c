package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UpdateAccountRequest defines the data allowed for updating account details.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateAccountRequest struct {
	FullName      *string `json:"fullName" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	AvatarURL     *string `json:"avatarUrl" binding:"omitempty,url"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,url"`
}

// UserResponse is the public representation of a user account.
type UserResponse struct {
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		AvatarURL:  user.AvatarURL,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
	if user.CoverImageURL != nil {
		resp.CoverImageURL = *user.CoverImageURL
	}
	return resp
}

// OwnerResponse is the compact owner summary embedded in content payloads.
type OwnerResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
}

// ToOwnerResponse converts a domain.OwnerSummary.
func ToOwnerResponse(o domain.OwnerSummary) OwnerResponse {
	return OwnerResponse{
		UserID:    o.UserID,
		Username:  o.Username,
		FullName:  o.FullName,
		AvatarURL: o.AvatarURL,
	}
}

// ChannelProfileResponse is the public channel page for a username.
type ChannelProfileResponse struct {
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	AvatarURL         string `json:"avatarUrl"`
	CoverImageURL     string `json:"coverImageUrl,omitempty"`
	SubscriberCount   int64  `json:"subscriberCount"`
	SubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// ToChannelProfileResponse converts a domain.ChannelProfile.
func ToChannelProfileResponse(p *domain.ChannelProfile) ChannelProfileResponse {
	resp := ChannelProfileResponse{
		UserID:            p.UserID,
		Username:          p.Username,
		FullName:          p.FullName,
		AvatarURL:         p.AvatarURL,
		SubscriberCount:   p.SubscriberCount,
		SubscribedToCount: p.SubscribedToCount,
		IsSubscribed:      p.IsSubscribed,
	}
	if p.CoverImageURL != nil {
		resp.CoverImageURL = *p.CoverImageURL
	}
	return resp
}

// WatchHistoryEntryResponse is one row of a user's watch history.
type WatchHistoryEntryResponse struct {
	Video     VideoResponse `json:"video"`
	Owner     OwnerResponse `json:"owner"`
	WatchedAt time.Time     `json:"watchedAt"`
}

// ToWatchHistoryResponse converts watch history entries to their public form.
func ToWatchHistoryResponse(entries []domain.WatchHistoryEntry) []WatchHistoryEntryResponse {
	out := make([]WatchHistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = WatchHistoryEntryResponse{
			Video:     ToVideoResponse(&e.Video),
			Owner:     ToOwnerResponse(e.Owner),
			WatchedAt: e.WatchedAt,
		}
	}
	return out
}
