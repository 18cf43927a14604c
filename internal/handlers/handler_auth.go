package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// AuthHandler handles registration, login and the refresh token lifecycle.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// 5 requests per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh-token", limitMiddleware, h.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName), h.Logout)
	}
}

// setAuthCookies stores the token pair as httpOnly cookies.
func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	accessMaxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	refreshMaxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, accessMaxAge, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, refreshMaxAge, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
}

// clearAuthCookies expires both token cookies.
func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new local user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User Registration Info"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Username or email already taken"
// @Failure 500 {object} dto.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to register user")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user), "user registered successfully")
}

// Login godoc
// @Summary User login
// @Description Authenticates by username or email plus password and issues an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Wrong password"
// @Failure 404 {object} dto.APIResponse "No account for the identifier"
// @Failure 500 {object} dto.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, err, "user does not exist")
			return
		}
		respondError(c, err, "authentication failed")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "failed to generate token")
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "failed to generate token")
		return
	}

	h.setAuthCookies(c, accessToken, refreshToken)

	userResp := dto.ToUserResponse(user)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         &userResp,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "logged in successfully")
}

// RefreshToken godoc
// @Summary Rotate the refresh token
// @Description Redeems the refresh token from the cookie or body for a fresh token pair. The old token is invalidated.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token when not sent as a cookie"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse "Missing, invalid, expired or already-used token"
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		var req dto.RefreshTokenRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		respondError(c, apperrors.ErrUnauthorized, "unauthorized")
		return
	}

	user, pair, err := h.tokenService.RotateTokens(c.Request.Context(), refreshToken)
	if err != nil {
		// Deliberately uniform: the caller never learns which check failed.
		respondError(c, apperrors.ErrUnauthorized, "unauthorized")
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)

	userResp := dto.ToUserResponse(user)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         &userResp,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "token refreshed successfully")
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the auth cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.tokenService.Logout(c.Request.Context(), userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		respondError(c, err, "failed to log out")
		return
	}

	h.clearAuthCookies(c)
	respondSuccess(c, http.StatusOK, nil, "logged out successfully")
}
