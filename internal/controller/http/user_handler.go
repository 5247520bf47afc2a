package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodwave/internal/usecase"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email"`
	Role           *string  `json:"role"`
	IsActive       *bool    `json:"isActive"`
	FavoriteGenres []string `json:"favoriteGenres"`
	PreferredMoods []string `json:"preferredMoods"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userUseCase.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	if userID != requesterID(c) && requesterRole(c) != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	user, err := h.userUseCase.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Update a user
// @Description  Plain users may only rename themselves; admins may change any field
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path string true "User ID"
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      403  {object}  map[string]string
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.Update(c.Param("userId"), requesterID(c), requesterRole(c), usecase.UserUpdateInput{
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		IsActive:       req.IsActive,
		FavoriteGenres: req.FavoriteGenres,
		PreferredMoods: req.PreferredMoods,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	if userID != requesterID(c) && requesterRole(c) != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot delete another user"})
		return
	}

	if err := h.userUseCase.Delete(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// Follow godoc
// @Summary      Follow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID to follow"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/{userId}/follow [post]
func (h *UserHandler) Follow(c *gin.Context) {
	user, err := h.userUseCase.Follow(requesterID(c), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID to unfollow"
// @Success      200  {object}  entity.User
// @Router       /users/{userId}/follow [delete]
func (h *UserHandler) Unfollow(c *gin.Context) {
	user, err := h.userUseCase.Unfollow(requesterID(c), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
