package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type TrackHandler struct {
	trackUseCase usecase.TrackUseCase
}

func NewTrackHandler(trackUseCase usecase.TrackUseCase) *TrackHandler {
	return &TrackHandler{
		trackUseCase: trackUseCase,
	}
}

type CreateTrackRequest struct {
	Title       string   `json:"title" binding:"required"`
	ArtistID    string   `json:"artistId" binding:"required"`
	AlbumID     string   `json:"albumId"`
	DurationSec int      `json:"duration_sec"`
	Genre       string   `json:"genre"`
	Mood        []string `json:"mood"`
}

type UpdateTrackRequest struct {
	Title       *string  `json:"title"`
	AlbumID     *string  `json:"albumId"`
	DurationSec *int     `json:"duration_sec"`
	Genre       *string  `json:"genre"`
	Mood        []string `json:"mood"`
}

// Create godoc
// @Summary      Create a track
// @Description  Moods are validated against the vocabulary; the creator auto-likes the track
// @Tags         tracks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTrackRequest true "Track data"
// @Success      201  {object}  entity.Track
// @Failure      400  {object}  map[string]string
// @Router       /tracks [post]
func (h *TrackHandler) Create(c *gin.Context) {
	var req CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackUseCase.Create(usecase.TrackInput{
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		AlbumID:     req.AlbumID,
		DurationSec: req.DurationSec,
		Genre:       req.Genre,
		Mood:        req.Mood,
	}, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, track)
}

// List godoc
// @Summary      List tracks
// @Tags         tracks
// @Produce      json
// @Security     BearerAuth
// @Param        artistId query string false "Filter by artist"
// @Param        albumId  query string false "Filter by album"
// @Param        genre    query string false "Filter by genre"
// @Param        mood     query string false "Filter by mood membership"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Success      200  {array}  entity.Track
// @Router       /tracks [get]
func (h *TrackHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tracks, err := h.trackUseCase.List(
		c.Query("artistId"), c.Query("albumId"), c.Query("genre"), c.Query("mood"),
		limit, offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// Get godoc
// @Summary      Get a track by id
// @Tags         tracks
// @Produce      json
// @Security     BearerAuth
// @Param        trackId path string true "Track ID"
// @Success      200  {object}  entity.Track
// @Failure      404  {object}  map[string]string
// @Router       /tracks/{trackId} [get]
func (h *TrackHandler) Get(c *gin.Context) {
	track, err := h.trackUseCase.Get(c.Param("trackId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// GetByIDs godoc
// @Summary      Get several tracks by comma-separated ids
// @Tags         tracks
// @Produce      json
// @Security     BearerAuth
// @Param        ids path string true "Comma-separated track IDs"
// @Success      200  {array}  entity.Track
// @Router       /tracks/byIds/{ids} [get]
func (h *TrackHandler) GetByIDs(c *gin.Context) {
	raw := strings.Split(c.Param("ids"), ",")
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	tracks, err := h.trackUseCase.GetByIDs(ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// MoodNames godoc
// @Summary      List the mood vocabulary names
// @Tags         tracks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /tracks/meta/moods [get]
func (h *TrackHandler) MoodNames(c *gin.Context) {
	names, err := h.trackUseCase.MoodNames()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// Update godoc
// @Summary      Update a track
// @Description  A mood change replaces the full mood edge set in the graph
// @Tags         tracks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trackId path string true "Track ID"
// @Param        request body UpdateTrackRequest true "Fields to update"
// @Success      200  {object}  entity.Track
// @Failure      403  {object}  map[string]string
// @Router       /tracks/{trackId} [put]
func (h *TrackHandler) Update(c *gin.Context) {
	var req UpdateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackUseCase.Update(c.Param("trackId"), requesterID(c), requesterRole(c), usecase.TrackUpdateInput{
		Title:       req.Title,
		AlbumID:     req.AlbumID,
		DurationSec: req.DurationSec,
		Genre:       req.Genre,
		Mood:        req.Mood,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// Delete godoc
// @Summary      Delete a track
// @Tags         tracks
// @Produce      json
// @Security     BearerAuth
// @Param        trackId path string true "Track ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /tracks/{trackId} [delete]
func (h *TrackHandler) Delete(c *gin.Context) {
	if err := h.trackUseCase.Delete(c.Param("trackId"), requesterID(c), requesterRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "track deleted"})
}
