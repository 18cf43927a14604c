package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// videoHandler serves video browse and management endpoints.
type videoHandler struct {
	videoService portssvc.VideoSvcFacade
}

func newVideoHandler(vs portssvc.VideoSvcFacade) *videoHandler {
	return &videoHandler{videoService: vs}
}

// registerVideoRoutes sets up the authenticated video routes.
func registerVideoRoutes(v1 *gin.RouterGroup, videoService portssvc.VideoSvcFacade) {
	h := newVideoHandler(videoService)

	videos := v1.Group("/videos")
	{
		videos.POST("", h.publishVideo)
		videos.PATCH("/:videoID", h.updateVideo)
		videos.DELETE("/:videoID", h.deleteVideo)
		videos.PATCH("/:videoID/toggle-publish", h.togglePublish)
	}
}

// listVideos godoc
// @Summary List published videos
// @Description Returns a page of published videos, optionally filtered by a search query or uploader and sorted.
// @Tags videos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param query query string false "Free text search over title and description"
// @Param userId query string false "Filter by uploader"
// @Param sortBy query string false "createdAt | views | durationSeconds" default(createdAt)
// @Param sortType query string false "asc | desc" default(desc)
// @Success 200 {object} dto.APIResponse{data=dto.ListVideosResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /videos [get]
func (h *videoHandler) listVideos(c *gin.Context) {
	var req dto.ListVideosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.Normalize()

	videos, total, err := h.videoService.ListVideos(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to list videos")
		return
	}

	respondSuccess(c, http.StatusOK,
		dto.ToListVideosResponse(videos, total, req.Page, req.Limit), "videos fetched successfully")
}

// getVideo godoc
// @Summary Get a video
// @Description Returns a video with its uploader. A view is counted when a signed-in viewer other than the owner watches. Unpublished videos are visible to their owner only.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=dto.VideoWithOwnerResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /videos/{videoID} [get]
func (h *videoHandler) getVideo(c *gin.Context) {
	viewerID, _ := middleware.GetUserIDFromContext(c)

	video, err := h.videoService.GetVideoByID(c.Request.Context(), c.Param("videoID"), viewerID)
	if err != nil {
		respondError(c, err, "failed to fetch video")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToVideoWithOwnerResponse(video), "video fetched successfully")
}

// publishVideo godoc
// @Summary Publish a video
// @Description Creates a new published video owned by the authenticated user.
// @Tags videos
// @Accept json
// @Produce json
// @Param video body dto.CreateVideoRequest true "Video details"
// @Success 201 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos [post]
func (h *videoHandler) publishVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	video, err := h.videoService.PublishVideo(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to publish video")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToVideoResponse(video), "video published successfully")
}

// updateVideo godoc
// @Summary Update a video
// @Description Applies partial updates to a video. Only the owner may update.
// @Tags videos
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param video body dto.UpdateVideoRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/{videoID} [patch]
func (h *videoHandler) updateVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), c.Param("videoID"), userID, req)
	if err != nil {
		respondError(c, err, "failed to update video")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToVideoResponse(video), "video updated successfully")
}

// togglePublish godoc
// @Summary Toggle publish status
// @Description Flips a video between published and unpublished. Only the owner may toggle.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/{videoID}/toggle-publish [patch]
func (h *videoHandler) togglePublish(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	video, err := h.videoService.TogglePublishStatus(c.Request.Context(), c.Param("videoID"), userID)
	if err != nil {
		respondError(c, err, "failed to toggle publish status")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToVideoResponse(video), "publish status toggled successfully")
}

// deleteVideo godoc
// @Summary Delete a video
// @Description Soft deletes a video. Only the owner may delete.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /videos/{videoID} [delete]
func (h *videoHandler) deleteVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.videoService.DeleteVideo(c.Request.Context(), c.Param("videoID"), userID); err != nil {
		respondError(c, err, "failed to delete video")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "video deleted successfully")
}
