package types

import (
	"github.com/pageza/heritage-recipes/backend/internal/models"
)

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// CreateRecipeRequest represents the request body for creating a recipe.
// Times are pointers so a missing value is distinguishable from zero.
type CreateRecipeRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Ingredients  []string        `json:"ingredients" binding:"required,min=1"`
	Instructions []string        `json:"instructions" binding:"required,min=1"`
	ImageURL     string          `json:"imageUrl"`
	Cuisine      string          `json:"cuisine"`
	Diet         string          `json:"diet"`
	Category     models.Category `json:"category" binding:"required"`
	PrepTime     *int            `json:"prepTime" binding:"required"`
	CookTime     *int            `json:"cookTime" binding:"required"`
	Servings     *int            `json:"servings" binding:"required"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	ImageURL     *string          `json:"imageUrl"`
	Cuisine      *string          `json:"cuisine"`
	Diet         *string          `json:"diet"`
	Category     *models.Category `json:"category"`
	PrepTime     *int             `json:"prepTime"`
	CookTime     *int             `json:"cookTime"`
	Servings     *int             `json:"servings"`
}

// RecipeFilter narrows a recipe listing. Zero values mean no restriction.
type RecipeFilter struct {
	Search   string          `form:"search"`
	Category models.Category `form:"category"`
}

// FavoriteResponse is returned by the favorite toggle.
type FavoriteResponse struct {
	Message    string `json:"message"`
	IsFavorite bool   `json:"isFavorite"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
