package services

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dbPool *pgxpool.Pool) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first, other services lean on its watch history facade.
	container.User = NewUserService(repos.UserRepo)

	container.Video = NewVideoService(repos.VideoRepo, container.User)
	container.Tweet = NewTweetService(repos.TweetRepo)
	container.Comment = NewCommentService(repos.CommentRepo, repos.VideoRepo)
	container.Like = NewLikeService(repos.LikeRepo, repos.VideoRepo, repos.CommentRepo, repos.TweetRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo, repos.UserRepo)
	container.Playlist = NewPlaylistService(repos.PlaylistRepo, repos.VideoRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo)

	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg, repos.UserRepo)

	container.Health = NewHealthService(dbPool, cfg.EnableDBCheck)

	return container
}
