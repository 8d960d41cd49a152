package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/database"
	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/testhelpers"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

func TestWire_ServicesShareTheDatabase(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	cfg := &config.Config{JWTSecret: "wire-test-secret", JWTTTL: time.Hour}

	application := Wire(&database.DB{DB: db}, cfg, nil)
	ctx := context.Background()

	user, token, err := application.AuthService.Register(ctx, "Asha", "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := application.AuthService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	prep, cook, servings := 10, 25, 4
	recipe, err := application.RecipeService.Create(ctx, user.ID, &types.CreateRecipeRequest{
		Title:        "Dal Tadka",
		Description:  "Yellow lentils with a cumin tempering",
		Ingredients:  []string{"1 cup toor dal", "1 tsp cumin"},
		Instructions: []string{"Boil dal", "Temper and pour"},
		Category:     models.CategoryDinner,
		PrepTime:     &prep,
		CookTime:     &cook,
		Servings:     &servings,
	})
	require.NoError(t, err)

	found, err := application.Recipes.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dal Tadka", found.Title)
}
