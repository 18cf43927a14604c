package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// DashboardRepository defines aggregate queries backing the channel dashboard
type DashboardRepository interface {
	// GetChannelStats computes view, video, subscriber and like totals for a channel.
	GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)

	// ListChannelVideos retrieves all of a channel's videos, including
	// unpublished ones, most recent first.
	ListChannelVideos(ctx context.Context, channelID string, limit int, offset int) ([]domain.Video, error)
}
