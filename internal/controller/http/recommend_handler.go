package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type RecommendHandler struct {
	recommendUseCase usecase.RecommendUseCase
}

func NewRecommendHandler(recommendUseCase usecase.RecommendUseCase) *RecommendHandler {
	return &RecommendHandler{
		recommendUseCase: recommendUseCase,
	}
}

// Recommendations godoc
// @Summary      Mood-based track recommendations for a user
// @Description  Scores by mood overlap with liked tracks, falling back to the user's preferred moods
// @Tags         integration
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  usecase.RecommendationResult
// @Failure      404  {object}  map[string]string
// @Router       /integration/recommendations/{userId} [get]
func (h *RecommendHandler) Recommendations(c *gin.Context) {
	result, err := h.recommendUseCase.Recommend(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
