package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// playlistHandler serves the playlist endpoints.
type playlistHandler struct {
	playlistService portssvc.PlaylistSvcFacade
}

func newPlaylistHandler(ps portssvc.PlaylistSvcFacade) *playlistHandler {
	return &playlistHandler{playlistService: ps}
}

// registerPlaylistRoutes sets up the authenticated playlist routes.
func registerPlaylistRoutes(v1 *gin.RouterGroup, playlistService portssvc.PlaylistSvcFacade) {
	h := newPlaylistHandler(playlistService)

	playlists := v1.Group("/playlists")
	{
		playlists.POST("", h.createPlaylist)
		playlists.PATCH("/:playlistID", h.updatePlaylist)
		playlists.DELETE("/:playlistID", h.deletePlaylist)
		playlists.POST("/:playlistID/videos/:videoID", h.addVideo)
		playlists.DELETE("/:playlistID/videos/:videoID", h.removeVideo)
	}
}

// createPlaylist godoc
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlist body dto.CreatePlaylistRequest true "Playlist details"
// @Success 201 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists [post]
func (h *playlistHandler) createPlaylist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to create playlist")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToPlaylistResponse(playlist), "playlist created successfully")
}

// getPlaylist godoc
// @Summary Get a playlist
// @Description Returns a playlist with its owner and videos in insertion order.
// @Tags playlists
// @Produce json
// @Param playlistID path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistWithVideosResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /playlists/{playlistID} [get]
func (h *playlistHandler) getPlaylist(c *gin.Context) {
	playlist, err := h.playlistService.GetPlaylistByID(c.Request.Context(), c.Param("playlistID"))
	if err != nil {
		respondError(c, err, "failed to fetch playlist")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToPlaylistWithVideosResponse(playlist), "playlist fetched successfully")
}

// listUserPlaylists godoc
// @Summary List a user's playlists
// @Tags playlists
// @Produce json
// @Param userID path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.PlaylistResponse}
// @Router /playlists/user/{userID} [get]
func (h *playlistHandler) listUserPlaylists(c *gin.Context) {
	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Normalize()

	playlists, err := h.playlistService.ListUserPlaylists(
		c.Request.Context(), c.Param("userID"), params.Limit, params.Offset())
	if err != nil {
		respondError(c, err, "failed to list playlists")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToPlaylistListResponse(playlists), "playlists fetched successfully")
}

// updatePlaylist godoc
// @Summary Update a playlist
// @Description Applies partial updates to a playlist's name and description. Only the owner may update.
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistID path string true "Playlist ID"
// @Param playlist body dto.UpdatePlaylistRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/{playlistID} [patch]
func (h *playlistHandler) updatePlaylist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playlist, err := h.playlistService.UpdatePlaylist(c.Request.Context(), c.Param("playlistID"), userID, req)
	if err != nil {
		respondError(c, err, "failed to update playlist")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToPlaylistResponse(playlist), "playlist updated successfully")
}

// deletePlaylist godoc
// @Summary Delete a playlist
// @Description Removes a playlist and its memberships. Only the owner may delete.
// @Tags playlists
// @Produce json
// @Param playlistID path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/{playlistID} [delete]
func (h *playlistHandler) deletePlaylist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.playlistService.DeletePlaylist(c.Request.Context(), c.Param("playlistID"), userID); err != nil {
		respondError(c, err, "failed to delete playlist")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "playlist deleted successfully")
}

// addVideo godoc
// @Summary Add a video to a playlist
// @Description Appends a video to a playlist. Adding a video that is already present is a no-op. Only the owner may modify membership.
// @Tags playlists
// @Produce json
// @Param playlistID path string true "Playlist ID"
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /playlists/{playlistID}/videos/{videoID} [post]
func (h *playlistHandler) addVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.playlistService.AddVideo(c.Request.Context(), c.Param("playlistID"), c.Param("videoID"), userID)
	if err != nil {
		respondError(c, err, "failed to add video to playlist")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "video added to playlist")
}

// removeVideo godoc
// @Summary Remove a video from a playlist
// @Description Removes a video from a playlist. Only the owner may modify membership.
// @Tags playlists
// @Produce json
// @Param playlistID path string true "Playlist ID"
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Video not in the playlist"
// @Security BearerAuth
// @Router /playlists/{playlistID}/videos/{videoID} [delete]
func (h *playlistHandler) removeVideo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.playlistService.RemoveVideo(c.Request.Context(), c.Param("playlistID"), c.Param("videoID"), userID)
	if err != nil {
		respondError(c, err, "failed to remove video from playlist")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "video removed from playlist")
}
