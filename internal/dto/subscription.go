package dto

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ToggleSubscriptionResponse reports the subscription state after a toggle.
type ToggleSubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

// ChannelListResponse wraps a page of channel or subscriber summaries.
type ChannelListResponse struct {
	Channels []OwnerResponse `json:"channels"`
	Total    int64           `json:"total"`
}

// ToChannelListResponse converts owner summaries to their public form.
func ToChannelListResponse(channels []domain.OwnerSummary, total int64) ChannelListResponse {
	out := make([]OwnerResponse, len(channels))
	for i, c := range channels {
		out[i] = ToOwnerResponse(c)
	}
	return ChannelListResponse{Channels: out, Total: total}
}
