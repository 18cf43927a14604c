package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthHandlerSvcFacade
	Video        VideoSvcFacade
	Tweet        TweetSvcFacade
	Comment      CommentSvcFacade
	Like         LikeSvcFacade
	Subscription SubscriptionSvcFacade
	Playlist     PlaylistSvcFacade
	Dashboard    DashboardSvcFacade
	Health       HealthSvcFacade
}

// HealthSvcFacade reports whether the service and its dependencies are up.
type HealthSvcFacade interface {
	// Check pings the backing store when database checks are enabled.
	Check(ctx context.Context) error
}
