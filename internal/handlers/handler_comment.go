package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// commentHandler serves the comment endpoints.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(cs portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{commentService: cs}
}

// registerCommentRoutes sets up the authenticated comment routes.
func registerCommentRoutes(v1 *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := newCommentHandler(commentService)

	comments := v1.Group("/comments")
	{
		comments.POST("/:videoID", h.addComment)
		comments.PATCH("/c/:commentID", h.updateComment)
		comments.DELETE("/c/:commentID", h.deleteComment)
	}
}

// addComment godoc
// @Summary Comment on a video
// @Tags comments
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Video not found"
// @Security BearerAuth
// @Router /comments/{videoID} [post]
func (h *commentHandler) addComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), c.Param("videoID"), userID, req)
	if err != nil {
		respondError(c, err, "failed to add comment")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToCommentResponse(comment), "comment added successfully")
}

// listVideoComments godoc
// @Summary List a video's comments
// @Description Returns a page of comments on a video, most recent first, with the total count.
// @Tags comments
// @Produce json
// @Param videoID path string true "Video ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListCommentsResponse}
// @Failure 404 {object} dto.APIResponse "Video not found"
// @Router /comments/{videoID} [get]
func (h *commentHandler) listVideoComments(c *gin.Context) {
	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Normalize()

	comments, total, err := h.commentService.ListVideoComments(
		c.Request.Context(), c.Param("videoID"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list comments")
		return
	}

	respondSuccess(c, http.StatusOK,
		dto.ToListCommentsResponse(comments, total, params.Page, params.Limit), "comments fetched successfully")
}

// updateComment godoc
// @Summary Edit a comment
// @Description Updates a comment's content. Only the author may edit.
// @Tags comments
// @Accept json
// @Produce json
// @Param commentID path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/c/{commentID} [patch]
func (h *commentHandler) updateComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentID"), userID, req)
	if err != nil {
		respondError(c, err, "failed to update comment")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCommentResponse(comment), "comment updated successfully")
}

// deleteComment godoc
// @Summary Delete a comment
// @Description Removes a comment. The comment author or the video owner may delete.
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/c/{commentID} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("commentID"), userID); err != nil {
		respondError(c, err, "failed to delete comment")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "comment deleted successfully")
}
