package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type ArtistHandler struct {
	artistUseCase usecase.ArtistUseCase
}

func NewArtistHandler(artistUseCase usecase.ArtistUseCase) *ArtistHandler {
	return &ArtistHandler{
		artistUseCase: artistUseCase,
	}
}

type CreateArtistRequest struct {
	Name       string `json:"name" binding:"required"`
	Genre      string `json:"genre" binding:"required"`
	Origin     string `json:"origin"`
	FormedYear int    `json:"formedYear"`
}

type UpdateArtistRequest struct {
	Name       *string `json:"name"`
	Genre      *string `json:"genre"`
	Origin     *string `json:"origin"`
	FormedYear *int    `json:"formedYear"`
}

// Create godoc
// @Summary      Create an artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateArtistRequest true "Artist data"
// @Success      201  {object}  entity.Artist
// @Failure      400  {object}  map[string]string
// @Router       /artists [post]
func (h *ArtistHandler) Create(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artist, err := h.artistUseCase.Create(usecase.ArtistInput{
		Name:       req.Name,
		Genre:      req.Genre,
		Origin:     req.Origin,
		FormedYear: req.FormedYear,
	}, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

// List godoc
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        genre  query string false "Filter by genre"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {array}  entity.Artist
// @Router       /artists [get]
func (h *ArtistHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	artists, err := h.artistUseCase.List(c.Query("genre"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// Get godoc
// @Summary      Get an artist by id
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        artistId path string true "Artist ID"
// @Success      200  {object}  entity.Artist
// @Failure      404  {object}  map[string]string
// @Router       /artists/{artistId} [get]
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.artistUseCase.Get(c.Param("artistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// Update godoc
// @Summary      Update an artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        artistId path string true "Artist ID"
// @Param        request  body UpdateArtistRequest true "Fields to update"
// @Success      200  {object}  entity.Artist
// @Failure      403  {object}  map[string]string
// @Router       /artists/{artistId} [put]
func (h *ArtistHandler) Update(c *gin.Context) {
	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artist, err := h.artistUseCase.Update(c.Param("artistId"), requesterID(c), requesterRole(c), usecase.ArtistUpdateInput{
		Name:       req.Name,
		Genre:      req.Genre,
		Origin:     req.Origin,
		FormedYear: req.FormedYear,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// Delete godoc
// @Summary      Delete an artist
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        artistId path string true "Artist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /artists/{artistId} [delete]
func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.artistUseCase.Delete(c.Param("artistId"), requesterID(c), requesterRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "artist deleted"})
}
