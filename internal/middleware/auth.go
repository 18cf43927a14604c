package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// extractAccessToken pulls the access token from the Authorization header or,
// failing that, from the access token cookie.
func extractAccessToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil {
			return token
		}
	}
	return ""
}

// attachUser stores the user ID and an enriched logger on the request context.
func attachUser(c *gin.Context, userID string) {
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
}

// AuthMiddleware creates a Gin middleware handler that validates JWT access
// tokens from the Authorization header or the access token cookie.
func AuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractAccessToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("Access token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "authentication required", "UNAUTHORIZED"))
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "invalid or expired token", "UNAUTHORIZED"))
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "invalid token claims", "UNAUTHORIZED"))
			return
		}

		attachUser(c, claims.Subject)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a valid access token is
// present but lets anonymous requests through. Endpoints that personalize
// public data (channel profiles, video views) use this.
func OptionalAuthMiddleware(jwtSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractAccessToken(c, cookieName)
		if tokenString != "" {
			if claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret); err == nil && claims.Subject != "" {
				attachUser(c, claims.Subject)
			}
		}
		c.Next()
	}
}
