package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// likeHandler serves the like toggle and liked-video listing endpoints.
type likeHandler struct {
	likeService portssvc.LikeSvcFacade
}

// registerLikeRoutes sets up the authenticated like routes.
func registerLikeRoutes(v1 *gin.RouterGroup, likeService portssvc.LikeSvcFacade) {
	h := &likeHandler{likeService: likeService}

	likes := v1.Group("/likes")
	{
		likes.POST("/toggle/v/:videoID", h.toggleVideoLike)
		likes.POST("/toggle/c/:commentID", h.toggleCommentLike)
		likes.POST("/toggle/t/:tweetID", h.toggleTweetLike)
		likes.GET("/videos", h.listLikedVideos)
	}
}

func (h *likeHandler) toggle(c *gin.Context, kind domain.LikeTargetKind, targetID string) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	liked, err := h.likeService.ToggleLike(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		respondError(c, err, "failed to toggle like")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToggleLikeResponse{Liked: liked}, "like toggled successfully")
}

// toggleVideoLike godoc
// @Summary Toggle a video like
// @Tags likes
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleLikeResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/toggle/v/{videoID} [post]
func (h *likeHandler) toggleVideoLike(c *gin.Context) {
	h.toggle(c, domain.LikeTargetVideo, c.Param("videoID"))
}

// toggleCommentLike godoc
// @Summary Toggle a comment like
// @Tags likes
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleLikeResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/toggle/c/{commentID} [post]
func (h *likeHandler) toggleCommentLike(c *gin.Context) {
	h.toggle(c, domain.LikeTargetComment, c.Param("commentID"))
}

// toggleTweetLike godoc
// @Summary Toggle a tweet like
// @Tags likes
// @Produce json
// @Param tweetID path string true "Tweet ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleLikeResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/toggle/t/{tweetID} [post]
func (h *likeHandler) toggleTweetLike(c *gin.Context) {
	h.toggle(c, domain.LikeTargetTweet, c.Param("tweetID"))
}

// listLikedVideos godoc
// @Summary List liked videos
// @Description Returns the videos the authenticated user has liked, most recently liked first.
// @Tags likes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.LikedVideoResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /likes/videos [get]
func (h *likeHandler) listLikedVideos(c *gin.Context) {
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

	likes, err := h.likeService.ListLikedVideos(c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list liked videos")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToLikedVideosResponse(likes), "liked videos fetched successfully")
}
