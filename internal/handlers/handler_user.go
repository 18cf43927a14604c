package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// UserHandler serves the account endpoints of the authenticated user.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: us}
}

// registerUserRoutes sets up the authenticated user routes.
func registerUserRoutes(v1 *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	users := v1.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.PATCH("/me", h.UpdateAccount)
		users.DELETE("/me", h.DeleteAccount)
		users.POST("/me/password", h.ChangePassword)
		users.GET("/me/watch-history", h.GetWatchHistory)
	}
}

// GetMe godoc
// @Summary Get current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to fetch user")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "user fetched successfully")
}

// UpdateAccount godoc
// @Summary Update account details
// @Description Applies partial updates to the authenticated user's account.
// @Tags users
// @Accept json
// @Produce json
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to update account")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "account updated successfully")
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Soft-deletes the authenticated user's account and revokes the refresh token.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err, "failed to delete account")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "account deleted successfully")
}

// ChangePassword godoc
// @Summary Change password
// @Description Replaces the password after verifying the current one.
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Account has no local password"
// @Failure 401 {object} dto.APIResponse "Old password wrong"
// @Security BearerAuth
// @Router /users/me/password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "failed to change password")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "password changed successfully")
}

// GetWatchHistory godoc
// @Summary Get watch history
// @Description Lists the authenticated user's watched videos, most recent first.
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.WatchHistoryEntryResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me/watch-history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Normalize()

	entries, err := h.userService.GetWatchHistory(c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to fetch watch history")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToWatchHistoryResponse(entries), "watch history fetched successfully")
}

// channelHandler serves the public channel profile endpoint.
type channelHandler struct {
	userService portssvc.UserSvcFacade
}

func newChannelHandler(us portssvc.UserSvcFacade) *channelHandler {
	return &channelHandler{userService: us}
}

// getChannelProfile godoc
// @Summary Get channel profile
// @Description Returns a channel's public profile with subscriber counts. When the request carries a valid token the response reports whether the viewer subscribes to the channel.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=dto.ChannelProfileResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /channels/{username} [get]
func (h *channelHandler) getChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.userService.GetChannelProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		respondError(c, err, "failed to fetch channel profile")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToChannelProfileResponse(profile), "channel profile fetched successfully")
}
