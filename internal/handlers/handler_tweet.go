package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// tweetHandler serves the tweet endpoints.
type tweetHandler struct {
	tweetService portssvc.TweetSvcFacade
}

func newTweetHandler(ts portssvc.TweetSvcFacade) *tweetHandler {
	return &tweetHandler{tweetService: ts}
}

// registerTweetRoutes sets up the authenticated tweet routes.
func registerTweetRoutes(v1 *gin.RouterGroup, tweetService portssvc.TweetSvcFacade) {
	h := newTweetHandler(tweetService)

	tweets := v1.Group("/tweets")
	{
		tweets.POST("", h.createTweet)
		tweets.PATCH("/:tweetID", h.updateTweet)
		tweets.DELETE("/:tweetID", h.deleteTweet)
	}
}

// createTweet godoc
// @Summary Post a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweet body dto.CreateTweetRequest true "Tweet content"
// @Success 201 {object} dto.APIResponse{data=dto.TweetResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /tweets [post]
func (h *tweetHandler) createTweet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tweet, err := h.tweetService.CreateTweet(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to create tweet")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToTweetResponse(tweet), "tweet created successfully")
}

// listUserTweets godoc
// @Summary List a user's tweets
// @Description Returns a user's tweets, most recent first.
// @Tags tweets
// @Produce json
// @Param userID path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.TweetWithOwnerResponse}
// @Router /tweets/user/{userID} [get]
func (h *tweetHandler) listUserTweets(c *gin.Context) {
	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Normalize()

	tweets, err := h.tweetService.ListUserTweets(c.Request.Context(), c.Param("userID"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list tweets")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToTweetListResponse(tweets), "tweets fetched successfully")
}

// updateTweet godoc
// @Summary Edit a tweet
// @Description Updates a tweet's content. Only the owner may edit.
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetID path string true "Tweet ID"
// @Param tweet body dto.UpdateTweetRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=dto.TweetResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /tweets/{tweetID} [patch]
func (h *tweetHandler) updateTweet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tweet, err := h.tweetService.UpdateTweet(c.Request.Context(), c.Param("tweetID"), userID, req)
	if err != nil {
		respondError(c, err, "failed to update tweet")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToTweetResponse(tweet), "tweet updated successfully")
}

// deleteTweet godoc
// @Summary Delete a tweet
// @Description Removes a tweet. Only the owner may delete.
// @Tags tweets
// @Produce json
// @Param tweetID path string true "Tweet ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /tweets/{tweetID} [delete]
func (h *tweetHandler) deleteTweet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.tweetService.DeleteTweet(c.Request.Context(), c.Param("tweetID"), userID); err != nil {
		respondError(c, err, "failed to delete tweet")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "tweet deleted successfully")
}
