package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// DashboardSvcFacade defines aggregate views for a channel owner
type DashboardSvcFacade interface {
	// GetChannelStats computes view, video, subscriber and like totals for a channel.
	GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)

	// ListChannelVideos retrieves all of a channel's videos, including unpublished ones.
	ListChannelVideos(ctx context.Context, channelID string, limit int, offset int) ([]domain.Video, error)
}
