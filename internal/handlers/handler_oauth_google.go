package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

const oauthStateCookieName = "oauthState"

// GoogleOAuthHandler drives the server-side Google OAuth login flow.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		tokenService:       tokenService,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.Token, cfg)

	googleRoutes := r.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("", h.LoginGoogle)
		googleRoutes.GET("/callback", h.CallbackGoogle)
		googleRoutes.POST("/id-token", h.LoginGoogleIDToken)
	}
}

// issueSession generates a token pair for the user and stores it in the auth
// cookies. It reports false after writing an error response on failure.
func (h *GoogleOAuthHandler) issueSession(c *gin.Context, user *domain.User) (string, string, bool) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err, "failed to generate token")
		return "", "", false
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondError(c, err, "failed to generate token")
		return "", "", false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	accessMaxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	refreshMaxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, accessMaxAge, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, refreshMaxAge, h.cfg.CookiePath, "", h.cfg.IsProduction, true)
	return accessToken, refreshToken, true
}

// LoginGoogle godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's consent screen with a CSRF state cookie set.
// @Tags oauth
// @Success 307
// @Failure 500 {object} dto.APIResponse
// @Router /auth/google [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "failed to start login flow")
		return
	}

	// 10 minutes is plenty for the round trip to Google and back
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, h.cfg.CookiePath, "", h.cfg.IsProduction, true)

	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Google login callback
// @Description Validates the state, exchanges the authorization code, resolves the local account and issues a token pair.
// @Tags oauth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 302
// @Failure 401 {object} dto.APIResponse "State mismatch"
// @Failure 502 {object} dto.APIResponse "Google exchange failed"
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookieName)
	returnedState := c.Query("state")
	if err != nil || expectedState == "" ||
		subtle.ConstantTimeCompare([]byte(expectedState), []byte(returnedState)) != 1 {
		logger.Warn("oauth state mismatch on google callback")
		respondError(c, apperrors.ErrUnauthorized, "unauthorized")
		return
	}
	// single use
	c.SetCookie(oauthStateCookieName, "", -1, h.cfg.CookiePath, "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		respondError(c, apperrors.NewBadRequestError("authorization code missing"), "")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("google code exchange failed", "error", err)
		respondError(c, apperrors.NewAppError(http.StatusBadGateway, "failed to exchange code with google", err), "")
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, oauth2Token)
	if err != nil {
		logger.Error("google userinfo fetch failed", "error", err)
		respondError(c, apperrors.NewAppError(http.StatusBadGateway, "failed to fetch google user info", err), "")
		return
	}

	user, err := h.googleOAuthService.FindOrCreateUser(ctx, info)
	if err != nil {
		respondError(c, err, "failed to resolve google account")
		return
	}

	if _, _, ok := h.issueSession(c, user); !ok {
		return
	}

	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL)
}

// LoginGoogleIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained client-side (mobile or SPA flow), resolves the local account and issues a token pair.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "ID token invalid"
// @Router /auth/google/id-token [post]
func (h *GoogleOAuthHandler) LoginGoogleIDToken(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("google id token validation failed", "error", err)
		respondError(c, apperrors.ErrUnauthorized, "unauthorized")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		respondError(c, apperrors.NewBadRequestError("essential claims missing from google id token"), "")
		return
	}

	user, err := h.googleOAuthService.FindOrCreateUser(ctx, &domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: emailVerified,
		Name:          name,
		Picture:       picture,
	})
	if err != nil {
		respondError(c, err, "failed to resolve google account")
		return
	}

	accessToken, refreshToken, ok := h.issueSession(c, user)
	if !ok {
		return
	}

	userResp := dto.ToUserResponse(user)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         &userResp,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "logged in successfully")
}
