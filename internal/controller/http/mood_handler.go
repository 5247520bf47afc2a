package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type MoodHandler struct {
	moodUseCase usecase.MoodUseCase
}

func NewMoodHandler(moodUseCase usecase.MoodUseCase) *MoodHandler {
	return &MoodHandler{
		moodUseCase: moodUseCase,
	}
}

type CreateMoodRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type UpdateMoodRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Create godoc
// @Summary      Add a mood to the vocabulary (admin)
// @Tags         moods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMoodRequest true "Mood data"
// @Success      201  {object}  entity.Mood
// @Failure      400  {object}  map[string]string
// @Router       /moods [post]
func (h *MoodHandler) Create(c *gin.Context) {
	var req CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood, err := h.moodUseCase.Create(usecase.MoodInput{
		Name:        req.Name,
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mood)
}

// List godoc
// @Summary      List the mood vocabulary
// @Tags         moods
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Mood
// @Router       /moods [get]
func (h *MoodHandler) List(c *gin.Context) {
	moods, err := h.moodUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moods)
}

// Get godoc
// @Summary      Get a mood by id
// @Tags         moods
// @Produce      json
// @Security     BearerAuth
// @Param        moodId path string true "Mood ID"
// @Success      200  {object}  entity.Mood
// @Failure      404  {object}  map[string]string
// @Router       /moods/{moodId} [get]
func (h *MoodHandler) Get(c *gin.Context) {
	mood, err := h.moodUseCase.Get(c.Param("moodId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mood)
}

// Update godoc
// @Summary      Update a mood (admin)
// @Tags         moods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        moodId  path string true "Mood ID"
// @Param        request body UpdateMoodRequest true "Fields to update"
// @Success      200  {object}  entity.Mood
// @Failure      404  {object}  map[string]string
// @Router       /moods/{moodId} [put]
func (h *MoodHandler) Update(c *gin.Context) {
	var req UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood, err := h.moodUseCase.Update(c.Param("moodId"), usecase.MoodUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mood)
}

// Delete godoc
// @Summary      Delete a mood (admin)
// @Description  Cascades: the name is removed from every track and the graph node is detached
// @Tags         moods
// @Produce      json
// @Security     BearerAuth
// @Param        moodId path string true "Mood ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moods/{moodId} [delete]
func (h *MoodHandler) Delete(c *gin.Context) {
	if err := h.moodUseCase.Delete(c.Param("moodId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mood deleted"})
}
