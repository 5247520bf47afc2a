package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodwave/internal/repo/graph"
	"moodwave/internal/usecase"
)

type GraphHandler struct {
	graphUseCase usecase.GraphUseCase
}

func NewGraphHandler(graphUseCase usecase.GraphUseCase) *GraphHandler {
	return &GraphHandler{
		graphUseCase: graphUseCase,
	}
}

type MergeNodeRequest struct {
	ID string `json:"id" binding:"required"`
}

type CreateLikeRequest struct {
	UserID  string `json:"userId" binding:"required"`
	TrackID string `json:"trackId" binding:"required"`
}

type CreateAlbumLikeRequest struct {
	UserID  string `json:"userId" binding:"required"`
	AlbumID string `json:"albumId" binding:"required"`
}

// ListNodes godoc
// @Summary      List graph node ids for a label
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /graph/{label}s [get]
func (h *GraphHandler) ListNodes(label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := h.graphUseCase.ListNodes(label)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}

// MergeNode godoc
// @Summary      Merge a graph node (idempotent)
// @Tags         graph
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MergeNodeRequest true "Node id"
// @Success      201  {object}  map[string]string
// @Router       /graph/{label}s [post]
func (h *GraphHandler) MergeNode(label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MergeNodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := h.graphUseCase.MergeNode(label, req.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"label": label, "id": req.ID})
	}
}

// DeleteNode godoc
// @Summary      Detach-delete a graph node
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Node id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /graph/{label}s/{id} [delete]
func (h *GraphHandler) DeleteNode(label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.graphUseCase.DeleteNode(label, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "node deleted"})
	}
}

// InitMoods godoc
// @Summary      Mirror the whole mood vocabulary into the graph
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /graph/moods/init [post]
func (h *GraphHandler) InitMoods(c *gin.Context) {
	count, err := h.graphUseCase.InitMoods()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"merged": count})
}

// CreateLike godoc
// @Summary      Create a user-likes-track edge
// @Tags         graph
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateLikeRequest true "Like data"
// @Success      201  {object}  map[string]string
// @Router       /graph/likes [post]
func (h *GraphHandler) CreateLike(c *gin.Context) {
	var req CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.graphUseCase.CreateLike(req.UserID, req.TrackID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "like recorded"})
}

// DeleteLike godoc
// @Summary      Delete a user-likes-track edge
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path string true "User ID"
// @Param        trackId path string true "Track ID"
// @Success      200  {object}  map[string]string
// @Router       /graph/likes/{userId}/{trackId} [delete]
func (h *GraphHandler) DeleteLike(c *gin.Context) {
	if err := h.graphUseCase.DeleteLike(c.Param("userId"), c.Param("trackId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "like removed"})
}

// CreateAlbumLike godoc
// @Summary      Create a user-likes-album edge (lazy album node merge)
// @Tags         graph
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAlbumLikeRequest true "Album like data"
// @Success      201  {object}  map[string]string
// @Router       /graph/likes/album [post]
func (h *GraphHandler) CreateAlbumLike(c *gin.Context) {
	var req CreateAlbumLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.graphUseCase.CreateAlbumLike(req.UserID, req.AlbumID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "album like recorded"})
}

// DeleteAlbumLike godoc
// @Summary      Delete a user-likes-album edge
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path string true "User ID"
// @Param        albumId path string true "Album ID"
// @Success      200  {object}  map[string]string
// @Router       /graph/likes/album/{userId}/{albumId} [delete]
func (h *GraphHandler) DeleteAlbumLike(c *gin.Context) {
	if err := h.graphUseCase.DeleteAlbumLike(c.Param("userId"), c.Param("albumId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "album like removed"})
}

// ArtistTracks godoc
// @Summary      Track ids performed by an artist
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        artistId path string true "Artist ID"
// @Success      200  {array}  string
// @Router       /graph/query/artist-tracks/{artistId} [get]
func (h *GraphHandler) ArtistTracks(c *gin.Context) {
	ids, err := h.graphUseCase.ArtistTracks(c.Param("artistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// MoodTracks godoc
// @Summary      Track ids carrying a mood
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        moodId path string true "Mood ID"
// @Success      200  {array}  string
// @Router       /graph/query/mood-tracks/{moodId} [get]
func (h *GraphHandler) MoodTracks(c *gin.Context) {
	ids, err := h.graphUseCase.MoodTracks(c.Param("moodId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// UserLikes godoc
// @Summary      Track ids a user likes
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {array}  string
// @Router       /graph/query/user-likes/{userId} [get]
func (h *GraphHandler) UserLikes(c *gin.Context) {
	ids, err := h.graphUseCase.UserLikes(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// UserLikedAlbums godoc
// @Summary      Album ids a user likes
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {array}  string
// @Router       /graph/query/user-liked-albums/{userId} [get]
func (h *GraphHandler) UserLikedAlbums(c *gin.Context) {
	ids, err := h.graphUseCase.UserLikedAlbums(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// AllLikes godoc
// @Summary      Like counts for every liked track, descending
// @Tags         graph
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.TrackLikeCount
// @Router       /graph/query/all-likes [get]
func (h *GraphHandler) AllLikes(c *gin.Context) {
	counts, err := h.graphUseCase.AllLikes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// RegisterRoutes wires the full graph surface under the given group.
func (h *GraphHandler) RegisterRoutes(rg *gin.RouterGroup) {
	labels := map[string]string{
		"users":   graph.LabelUser,
		"artists": graph.LabelArtist,
		"albums":  graph.LabelAlbum,
		"tracks":  graph.LabelTrack,
		"moods":   graph.LabelMood,
	}
	for route, label := range labels {
		rg.GET("/"+route, h.ListNodes(label))
		if label != graph.LabelMood {
			rg.POST("/"+route, h.MergeNode(label))
		}
		rg.DELETE("/"+route+"/:id", h.DeleteNode(label))
	}

	rg.POST("/moods/init", h.InitMoods)

	rg.POST("/likes", h.CreateLike)
	rg.DELETE("/likes/:userId/:trackId", h.DeleteLike)
	rg.POST("/likes/album", h.CreateAlbumLike)
	rg.DELETE("/likes/album/:userId/:albumId", h.DeleteAlbumLike)

	query := rg.Group("/query")
	{
		query.GET("/artist-tracks/:artistId", h.ArtistTracks)
		query.GET("/mood-tracks/:moodId", h.MoodTracks)
		query.GET("/user-likes/:userId", h.UserLikes)
		query.GET("/user-liked-albums/:userId", h.UserLikedAlbums)
		query.GET("/all-likes", h.AllLikes)
	}
}
