package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vidtube/vidtube_backend/cmd/docs"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	registerHealthRoutes(r, services.Health)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// Public browse routes, with the viewer resolved when a token is present
	registerPublicRoutes(r, cfg, services)

	// Authenticated API v1 routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes
	setupSwaggerRoutes(r, cfg)
}

// registerPublicRoutes configures endpoints that serve anonymous viewers.
// OptionalAuthMiddleware personalizes them when a valid token rides along.
func registerPublicRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1", middleware.OptionalAuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName))

	videoHandler := newVideoHandler(services.Video)
	public.GET("/videos", videoHandler.listVideos)
	public.GET("/videos/:videoID", videoHandler.getVideo)

	channelHandler := newChannelHandler(services.User)
	public.GET("/channels/:username", channelHandler.getChannelProfile)

	playlistHandler := newPlaylistHandler(services.Playlist)
	public.GET("/playlists/:playlistID", playlistHandler.getPlaylist)
	public.GET("/playlists/user/:userID", playlistHandler.listUserPlaylists)

	commentHandler := newCommentHandler(services.Comment)
	public.GET("/comments/:videoID", commentHandler.listVideoComments)

	tweetHandler := newTweetHandler(services.Tweet)
	public.GET("/tweets/user/:userID", tweetHandler.listUserTweets)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName))

	registerUserRoutes(v1, services.User)
	registerVideoRoutes(v1, services.Video)
	registerTweetRoutes(v1, services.Tweet)
	registerCommentRoutes(v1, services.Comment)
	registerLikeRoutes(v1, services.Like)
	registerSubscriptionRoutes(v1, services.Subscription)
	registerPlaylistRoutes(v1, services.Playlist)
	registerDashboardRoutes(v1, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
