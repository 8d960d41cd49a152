package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/models"
)

// ToggleFavorite flips recipeID in the user's favorites and returns the new state.
// The recipe does not have to exist.
func (s *RecipeService) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return false, err
	}
	return s.users.ToggleFavorite(ctx, userID, recipeID)
}

// AddFavorite adds an existing recipe to the user's favorites. Adding twice is a conflict.
func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("recipe not found")
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	added, err := s.users.AddFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !added {
		return apperrors.Conflict("recipe already in favorites")
	}
	return nil
}

// RemoveFavorite drops recipeID from the user's favorites. Removing an absent id succeeds.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	_, err := s.users.RemoveFavorite(ctx, userID, recipeID)
	return err
}

// ListFavorites returns the user's favorite recipes that still exist.
func (s *RecipeService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	recipes, err := s.recipes.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}
