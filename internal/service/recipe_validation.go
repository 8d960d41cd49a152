package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/models"
)

// textSanitizer strips markup from user supplied text. Entities are decoded before
// sanitizing so encoded tags are stripped too, and decoded again afterwards so
// "Mac & Cheese" is stored as typed.
type textSanitizer struct {
	policy *bluemonday.Policy
}

func newTextSanitizer() *textSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *textSanitizer) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(html.UnescapeString(v))))
}

func (s *textSanitizer) cleanList(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = s.clean(item)
	}
	return out
}

func (s *textSanitizer) recipe(r *models.Recipe) {
	r.Title = s.clean(r.Title)
	r.Description = s.clean(r.Description)
	r.Ingredients = s.cleanList(r.Ingredients)
	r.Instructions = s.cleanList(r.Instructions)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Cuisine = s.clean(r.Cuisine)
	r.Diet = s.clean(r.Diet)
}

func validateRecipe(r *models.Recipe) error {
	switch {
	case r.Title == "":
		return apperrors.Validation("title is required")
	case r.Description == "":
		return apperrors.Validation("description is required")
	case len(r.Ingredients) == 0:
		return apperrors.Validation("at least one ingredient is required")
	case hasBlank(r.Ingredients):
		return apperrors.Validation("ingredients must not be empty")
	case len(r.Instructions) == 0:
		return apperrors.Validation("at least one instruction is required")
	case hasBlank(r.Instructions):
		return apperrors.Validation("instructions must not be empty")
	case !r.Category.Valid():
		return invalidCategory()
	case r.PrepTime < 0:
		return apperrors.Validation("prepTime must not be negative")
	case r.CookTime < 0:
		return apperrors.Validation("cookTime must not be negative")
	case r.Servings <= 0:
		return apperrors.Validation("servings must be positive")
	}
	return nil
}

func invalidCategory() error {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return apperrors.Validation("category must be one of " + strings.Join(names, ", "))
}

func hasBlank(items []string) bool {
	for _, item := range items {
		if item == "" {
			return true
		}
	}
	return false
}
