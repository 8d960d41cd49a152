package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/middleware"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

// ToggleFavorite flips the recipe in the caller's favorites. Any well-formed id is
// accepted, whether or not the recipe exists.
func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apperrors.Auth("authorization token required"))
		return
	}
	id, err := recipeID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	isFavorite, err := h.recipeService.ToggleFavorite(c.Request.Context(), userID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.FavoriteResponse{Message: "Favorite toggled", IsFavorite: isFavorite})
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apperrors.Auth("authorization token required"))
		return
	}

	recipes, err := h.recipeService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	h.favoriteAction(c, h.recipeService.AddFavorite, "Added to favorites", false)
}

// RemoveFavorite is idempotent: a malformed id cannot be in the set, so it is a no-op.
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	h.favoriteAction(c, h.recipeService.RemoveFavorite, "Removed from favorites", true)
}

type favoriteFunc func(ctx context.Context, userID, recipeID uuid.UUID) error

func (h *RecipeHandler) favoriteAction(c *gin.Context, action favoriteFunc, message string, absentOK bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apperrors.Auth("authorization token required"))
		return
	}
	id, err := recipeID(c, "recipeId")
	if err != nil {
		if absentOK {
			c.JSON(http.StatusOK, types.MessageResponse{Message: message})
			return
		}
		_ = c.Error(err)
		return
	}

	if err := action(c.Request.Context(), userID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: message})
}
