package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
	}
}

type CreatePlaylistRequest struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	TrackIDs    []string `json:"trackIds"`
	IsPublic    *bool    `json:"isPublic"`
}

type UpdatePlaylistRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	TrackIDs    []string `json:"trackIds"`
	IsPublic    *bool    `json:"isPublic"`
}

// Create godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist data"
// @Success      201  {object}  entity.Playlist
// @Failure      400  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Create(usecase.PlaylistInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		TrackIDs:    req.TrackIDs,
		IsPublic:    req.IsPublic,
	}, requesterID(c), requesterRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

// List godoc
// @Summary      List playlists
// @Description  scope=mine (default) lists own playlists, scope=all is admin-only
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        scope  query string false "mine or all"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {array}  entity.Playlist
// @Failure      403  {object}  map[string]string
// @Router       /playlists [get]
func (h *PlaylistHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	playlists, err := h.playlistUseCase.List(c.Query("scope"), requesterID(c), requesterRole(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// Following godoc
// @Summary      Public playlists of followed users
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Playlist
// @Router       /playlists/following/all [get]
func (h *PlaylistHandler) Following(c *gin.Context) {
	playlists, err := h.playlistUseCase.Following(requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// Discover godoc
// @Summary      Public playlists from users you do not follow
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Playlist
// @Router       /playlists/discover/all [get]
func (h *PlaylistHandler) Discover(c *gin.Context) {
	playlists, err := h.playlistUseCase.Discover(requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// Aggregated godoc
// @Summary      Playlist with its tracks resolved
// @Description  Track ids that no longer resolve are silently skipped
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  usecase.AggregatedPlaylist
// @Failure      404  {object}  map[string]string
// @Router       /playlists/aggregated/{playlistId} [get]
func (h *PlaylistHandler) Aggregated(c *gin.Context) {
	aggregated, err := h.playlistUseCase.Aggregated(c.Param("playlistId"), requesterID(c), requesterRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aggregated)
}

// GenreStats godoc
// @Summary      Genre counts across playlists and liked tracks
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.GenreCount
// @Router       /playlists/stats/genres [get]
func (h *PlaylistHandler) GenreStats(c *gin.Context) {
	stats, err := h.playlistUseCase.GenreStats(requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get godoc
// @Summary      Get a playlist by id
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  entity.Playlist
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(c.Param("playlistId"), requesterID(c), requesterRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// Update godoc
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        request    body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  entity.Playlist
// @Failure      403  {object}  map[string]string
// @Router       /playlists/{playlistId} [put]
func (h *PlaylistHandler) Update(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Param("playlistId"), requesterID(c), requesterRole(c), usecase.PlaylistUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		TrackIDs:    req.TrackIDs,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// Delete godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUseCase.Delete(c.Param("playlistId"), requesterID(c), requesterRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "playlist deleted"})
}
