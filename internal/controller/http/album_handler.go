package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type AlbumHandler struct {
	albumUseCase usecase.AlbumUseCase
}

func NewAlbumHandler(albumUseCase usecase.AlbumUseCase) *AlbumHandler {
	return &AlbumHandler{
		albumUseCase: albumUseCase,
	}
}

type CreateAlbumRequest struct {
	ArtistID    string `json:"artistId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	ReleaseYear int    `json:"releaseYear"`
	Genre       string `json:"genre"`
	TrackCount  int    `json:"trackCount"`
	DurationMin int    `json:"duration_min"`
}

type UpdateAlbumRequest struct {
	Title       *string `json:"title"`
	ReleaseYear *int    `json:"releaseYear"`
	Genre       *string `json:"genre"`
	TrackCount  *int    `json:"trackCount"`
	DurationMin *int    `json:"duration_min"`
}

// Create godoc
// @Summary      Create an album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAlbumRequest true "Album data"
// @Success      201  {object}  entity.Album
// @Failure      400  {object}  map[string]string
// @Router       /albums [post]
func (h *AlbumHandler) Create(c *gin.Context) {
	var req CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album, err := h.albumUseCase.Create(usecase.AlbumInput{
		ArtistID:    req.ArtistID,
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		TrackCount:  req.TrackCount,
		DurationMin: req.DurationMin,
	}, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, album)
}

// List godoc
// @Summary      List albums
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        artistId query string false "Filter by artist"
// @Param        genre    query string false "Filter by genre"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Success      200  {array}  entity.Album
// @Router       /albums [get]
func (h *AlbumHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	albums, err := h.albumUseCase.List(c.Query("artistId"), c.Query("genre"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Get godoc
// @Summary      Get an album by id
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        albumId path string true "Album ID"
// @Success      200  {object}  entity.Album
// @Failure      404  {object}  map[string]string
// @Router       /albums/{albumId} [get]
func (h *AlbumHandler) Get(c *gin.Context) {
	album, err := h.albumUseCase.Get(c.Param("albumId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

// Update godoc
// @Summary      Update an album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        albumId path string true "Album ID"
// @Param        request body UpdateAlbumRequest true "Fields to update"
// @Success      200  {object}  entity.Album
// @Failure      403  {object}  map[string]string
// @Router       /albums/{albumId} [put]
func (h *AlbumHandler) Update(c *gin.Context) {
	var req UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album, err := h.albumUseCase.Update(c.Param("albumId"), requesterID(c), requesterRole(c), usecase.AlbumUpdateInput{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		TrackCount:  req.TrackCount,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

// Delete godoc
// @Summary      Delete an album
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        albumId path string true "Album ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /albums/{albumId} [delete]
func (h *AlbumHandler) Delete(c *gin.Context) {
	if err := h.albumUseCase.Delete(c.Param("albumId"), requesterID(c), requesterRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "album deleted"})
}
