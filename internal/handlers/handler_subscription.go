package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// subscriptionHandler serves the channel subscription endpoints.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// registerSubscriptionRoutes sets up the authenticated subscription routes.
func registerSubscriptionRoutes(v1 *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := &subscriptionHandler{subscriptionService: subscriptionService}

	subs := v1.Group("/subscriptions")
	{
		subs.POST("/c/:channelID", h.toggleSubscription)
		subs.GET("/c/:channelID", h.listSubscribers)
		subs.GET("/me", h.listSubscribedChannels)
	}
}

// toggleSubscription godoc
// @Summary Toggle a subscription
// @Description Subscribes or unsubscribes the authenticated user to a channel. Self-subscription is rejected.
// @Tags subscriptions
// @Produce json
// @Param channelID path string true "Channel (user) ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleSubscriptionResponse}
// @Failure 400 {object} dto.APIResponse "Subscribing to yourself"
// @Failure 404 {object} dto.APIResponse "Channel not found"
// @Security BearerAuth
// @Router /subscriptions/c/{channelID} [post]
func (h *subscriptionHandler) toggleSubscription(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	subscribed, err := h.subscriptionService.ToggleSubscription(c.Request.Context(), c.Param("channelID"), userID)
	if err != nil {
		respondError(c, err, "failed to toggle subscription")
		return
	}

	respondSuccess(c, http.StatusOK,
		dto.ToggleSubscriptionResponse{Subscribed: subscribed}, "subscription toggled successfully")
}

// listSubscribers godoc
// @Summary List a channel's subscribers
// @Tags subscriptions
// @Produce json
// @Param channelID path string true "Channel (user) ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ChannelListResponse}
// @Security BearerAuth
// @Router /subscriptions/c/{channelID} [get]
func (h *subscriptionHandler) listSubscribers(c *gin.Context) {
	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Normalize()

	subscribers, total, err := h.subscriptionService.ListSubscribers(
		c.Request.Context(), c.Param("channelID"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list subscribers")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToChannelListResponse(subscribers, total), "subscribers fetched successfully")
}

// listSubscribedChannels godoc
// @Summary List subscribed channels
// @Description Returns the channels the authenticated user subscribes to.
// @Tags subscriptions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ChannelListResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /subscriptions/me [get]
func (h *subscriptionHandler) listSubscribedChannels(c *gin.Context) {
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

	channels, total, err := h.subscriptionService.ListSubscribedChannels(
		c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list subscribed channels")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToChannelListResponse(channels, total), "subscribed channels fetched successfully")
}
