package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	videoRepo := newPgxVideoRepository(dbPool)
	tweetRepo := newPgxTweetRepository(dbPool)
	commentRepo := newPgxCommentRepository(dbPool)
	likeRepo := newPgxLikeRepository(dbPool)
	subscriptionRepo := newPgxSubscriptionRepository(dbPool)
	playlistRepo := newPgxPlaylistRepository(dbPool)
	dashboardRepo := newPgxDashboardRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		VideoRepo:        videoRepo,
		TweetRepo:        tweetRepo,
		CommentRepo:      commentRepo,
		LikeRepo:         likeRepo,
		SubscriptionRepo: subscriptionRepo,
		PlaylistRepo:     playlistRepo,
		DashboardRepo:    dashboardRepo,
	}
}
