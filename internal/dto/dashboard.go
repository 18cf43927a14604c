package dto

import (
	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ChannelStatsResponse aggregates the dashboard numbers for a channel.
type ChannelStatsResponse struct {
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// ToChannelStatsResponse converts a domain.ChannelStats.
func ToChannelStatsResponse(s *domain.ChannelStats) ChannelStatsResponse {
	return ChannelStatsResponse{
		TotalViews:       s.TotalViews,
		TotalVideos:      s.TotalVideos,
		TotalSubscribers: s.TotalSubscribers,
		TotalLikes:       s.TotalLikes,
	}
}
