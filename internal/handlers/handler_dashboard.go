package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// dashboardHandler serves the channel owner's aggregate views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// registerDashboardRoutes sets up the authenticated dashboard routes.
func registerDashboardRoutes(v1 *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getChannelStats)
		dashboard.GET("/videos", h.listChannelVideos)
	}
}

// getChannelStats godoc
// @Summary Get channel stats
// @Description Returns view, video, subscriber and like totals for the authenticated user's channel.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ChannelStatsResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getChannelStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetChannelStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to fetch channel stats")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToChannelStatsResponse(stats), "channel stats fetched successfully")
}

// listChannelVideos godoc
// @Summary List channel videos
// @Description Returns all of the authenticated user's videos, including unpublished ones.
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.VideoResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /dashboard/videos [get]
func (h *dashboardHandler) listChannelVideos(c *gin.Context) {
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

	videos, err := h.dashboardService.ListChannelVideos(c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to fetch channel videos")
		return
	}

	out := make([]dto.VideoResponse, len(videos))
	for i := range videos {
		out[i] = dto.ToVideoResponse(&videos[i])
	}
	respondSuccess(c, http.StatusOK, out, "channel videos fetched successfully")
}
