package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodwave/internal/entity"
)

// respondError maps the sentinel error taxonomy onto HTTP statuses. Conflicts
// deliberately come back as 400, matching the API contract the frontend was
// built against.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func requesterID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func requesterRole(c *gin.Context) string {
	if v, ok := c.Get("user_role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
