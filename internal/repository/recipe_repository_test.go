package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/testhelpers"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

func titles(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Title)
	}
	return out
}

func seedAt(t *testing.T, db *gorm.DB, owner uuid.UUID, title, desc string, cat models.Category, at time.Time) *models.Recipe {
	t.Helper()
	r := testhelpers.CreateTestRecipe(t, db, owner, title, desc, cat)
	require.NoError(t, db.Model(r).UpdateColumn("created_at", at).Error)
	return r
}

func TestRecipeRepository_CreateLoadsOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	repo := NewRecipeRepository(db)
	owner := testhelpers.CreateTestUser(t, db, "Asha", "asha@example.com")

	recipe := &models.Recipe{
		Title:        "Dal Tadka",
		Description:  "Yellow lentils with tempered spices",
		Ingredients:  models.StringList{"toor dal", "ghee"},
		Instructions: models.StringList{"Boil dal", "Temper spices"},
		Category:     models.CategoryDinner,
		PrepTime:     10,
		CookTime:     30,
		Servings:     4,
		UserID:       owner.ID,
	}
	require.NoError(t, repo.Create(context.Background(), recipe))
	require.NotNil(t, recipe.User)
	assert.Equal(t, "Asha", recipe.User.Name)

	got, err := repo.GetByID(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"toor dal", "ghee"}, got.Ingredients)
	assert.Equal(t, owner.ID, got.User.ID)
	assert.Empty(t, got.User.Email, "owner projection must only carry id and name")
}

func TestRecipeRepository_UpdateKeepsOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	owner := testhelpers.CreateTestUser(t, db, "Asha", "asha@example.com")
	intruder := testhelpers.CreateTestUser(t, db, "Ravi", "ravi@example.com")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Soup", "Warm soup", models.CategoryLunch)

	recipe.Title = "Tomato Soup"
	recipe.UserID = intruder.ID
	require.NoError(t, repo.Update(ctx, recipe))

	got, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", got.Title)
	assert.Equal(t, owner.ID, got.UserID)
}

func TestRecipeRepository_Delete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	owner := testhelpers.CreateTestUser(t, db, "Asha", "asha@example.com")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Soup", "Warm soup", models.CategoryLunch)

	require.NoError(t, repo.Delete(ctx, recipe.ID))
	_, err := repo.GetByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, recipe.ID), ErrNotFound)

	exists, err := repo.Exists(ctx, recipe.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecipeRepository_List(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	owner := testhelpers.CreateTestUser(t, db, "Asha", "asha@example.com")
	base := time.Now().UTC().Add(-time.Hour)

	seedAt(t, db, owner.ID, "Chicken Curry", "Spicy chicken in gravy", models.CategoryDinner, base)
	seedAt(t, db, owner.ID, "Chicken Sandwich", "Grilled chicken on bread", models.CategoryLunch, base.Add(time.Minute))
	seedAt(t, db, owner.ID, "Paneer Tikka", "Charred cottage cheese", models.CategoryDinner, base.Add(2*time.Minute))
	seedAt(t, db, owner.ID, "Pancakes", "Fluffy breakfast stack", models.CategoryBreakfast, base.Add(3*time.Minute))

	tests := []struct {
		name   string
		filter types.RecipeFilter
		want   []string
	}{
		{
			name: "no filter newest first",
			want: []string{"Pancakes", "Paneer Tikka", "Chicken Sandwich", "Chicken Curry"},
		},
		{
			name:   "category only",
			filter: types.RecipeFilter{Category: models.CategoryDinner},
			want:   []string{"Paneer Tikka", "Chicken Curry"},
		},
		{
			name:   "search is case insensitive",
			filter: types.RecipeFilter{Search: "CHICKEN"},
			want:   []string{"Chicken Sandwich", "Chicken Curry"},
		},
		{
			name:   "search and category",
			filter: types.RecipeFilter{Search: "chicken", Category: models.CategoryDinner},
			want:   []string{"Chicken Curry"},
		},
		{
			name:   "any word matches description",
			filter: types.RecipeFilter{Search: "fluffy cheese"},
			want:   []string{"Pancakes", "Paneer Tikka"},
		},
		{
			name:   "like wildcards are literal",
			filter: types.RecipeFilter{Search: "%"},
			want:   []string{},
		},
		{
			name:   "no match",
			filter: types.RecipeFilter{Search: "sushi"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
			for _, r := range got {
				assert.NotNil(t, r.User)
			}
		})
	}
}

func TestRecipeRepository_ListFavoritesSkipsDeleted(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	recipes := NewRecipeRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "Asha", "asha@example.com")
	keep := testhelpers.CreateTestRecipe(t, db, user.ID, "Dal Tadka", "Lentils", models.CategoryDinner)
	gone := testhelpers.CreateTestRecipe(t, db, user.ID, "Kheer", "Rice pudding", models.CategoryDessert)

	for _, id := range []uuid.UUID{keep.ID, gone.ID} {
		_, err := users.AddFavorite(ctx, user.ID, id)
		require.NoError(t, err)
	}
	require.NoError(t, recipes.Delete(ctx, gone.ID))

	got, err := recipes.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dal Tadka"}, titles(got))

	ids, err := users.FavoriteIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}
