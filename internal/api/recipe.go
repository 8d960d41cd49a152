package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/middleware"
	"github.com/pageza/heritage-recipes/backend/internal/service"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes. Every route requires a bearer token.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc, uploads bool) {
	recipes := router.Group("/recipes", requireAuth)
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/favorites", h.ListFavorites)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/favorite", h.ToggleFavorite)
		if uploads {
			recipes.POST("/:id/image", h.UploadImage)
		}
	}

	favorites := router.Group("/favorites", requireAuth)
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("/:recipeId", h.AddFavorite)
		favorites.DELETE("/:recipeId", h.RemoveFavorite)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var filter types.RecipeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.KindValidation, "invalid query", err))
		return
	}

	recipes, err := h.recipeService.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := recipeID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apperrors.Auth("authorization token required"))
		return
	}

	var req types.CreateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
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

	var req types.UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
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

	if err := h.recipeService.Delete(c.Request.Context(), userID, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Recipe deleted successfully"})
}
