package services

import (
	"context"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	stats, err := s.dashboardRepo.GetChannelStats(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel stats: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) ListChannelVideos(ctx context.Context, channelID string, limit int, offset int) ([]domain.Video, error) {
	videos, err := s.dashboardRepo.ListChannelVideos(ctx, channelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}
	return videos, nil
}
