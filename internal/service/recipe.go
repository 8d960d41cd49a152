package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

// RecipeService implements recipe CRUD with ownership checks and the favorites protocol.
type RecipeService struct {
	recipes   RecipeStore
	users     UserStore
	images    ImageStore
	sanitizer *textSanitizer
}

// NewRecipeService creates a RecipeService. images may be nil when uploads are disabled.
func NewRecipeService(recipes RecipeStore, users UserStore, images ImageStore) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		users:     users,
		images:    images,
		sanitizer: newTextSanitizer(),
	}
}

// List returns recipes matching filter, newest first.
func (s *RecipeService) List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, invalidCategory()
	}
	recipes, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("recipe not found")
		}
		return nil, err
	}
	return recipe, nil
}

// Create stores a new recipe owned by userID.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if req.PrepTime == nil || req.CookTime == nil || req.Servings == nil {
		return nil, apperrors.Validation("prepTime, cookTime and servings are required")
	}

	recipe := &models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		Cuisine:      req.Cuisine,
		Diet:         req.Diet,
		Category:     req.Category,
		PrepTime:     *req.PrepTime,
		CookTime:     *req.CookTime,
		Servings:     *req.Servings,
		UserID:       userID,
	}

	s.sanitizer.recipe(recipe)
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update merges the non-nil fields of req into the recipe. Only the owner may update.
func (s *RecipeService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.owned(ctx, userID, id, "update")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = req.Instructions
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.Cuisine != nil {
		recipe.Cuisine = *req.Cuisine
	}
	if req.Diet != nil {
		recipe.Diet = *req.Diet
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.PrepTime != nil {
		recipe.PrepTime = *req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = *req.CookTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}

	s.sanitizer.recipe(recipe)
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("recipe not found")
		}
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe. Only the owner may delete. Favorites referencing it stay.
func (s *RecipeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id, "delete"); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("recipe not found")
		}
		return err
	}
	return nil
}

// owned loads a recipe and checks that userID owns it.
func (s *RecipeService) owned(ctx context.Context, userID, id uuid.UUID, action string) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, apperrors.Authorization("not authorized to " + action + " this recipe")
	}
	return recipe, nil
}

func (s *RecipeService) requireUser(ctx context.Context, userID uuid.UUID) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("user not found")
	}
	return nil
}
