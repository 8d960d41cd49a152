package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

const searchDocument = "to_tsvector('english', recipes.title || ' ' || recipes.description)"

// RecipeRepository stores recipes.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository with the given GORM DB instance.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func ownerColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// Create inserts a recipe and loads its owner.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return r.loadOwner(ctx, recipe)
}

// GetByID retrieves a recipe with its owner.
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("User", ownerColumns).
		First(&recipe, "recipes.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// Exists reports whether a recipe with id exists.
func (r *RecipeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check recipe: %w", err)
	}
	return count > 0, nil
}

// Update writes every mutable column of recipe. The owner and creation time are never touched.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(recipe).
		Select("*").
		Omit("id", "user_id", "created_at", clause.Associations).
		Updates(recipe)
	if result.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.loadOwner(ctx, recipe)
}

// Delete removes a recipe. Favorites pointing at it are left in place.
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns recipes matching filter, newest first.
func (r *RecipeRepository) List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error) {
	query := r.db.WithContext(ctx).Model(&models.Recipe{}).Preload("User", ownerColumns)

	if filter.Category != "" {
		query = query.Where("recipes.category = ?", filter.Category)
	}

	search := strings.TrimSpace(filter.Search)
	switch {
	case search == "":
		query = query.Order("recipes.created_at DESC")
	case r.db.Dialector.Name() == "postgres":
		// Full-text match backed by idx_recipes_search; rank only breaks ties.
		query = query.
			Where(searchDocument+" @@ plainto_tsquery('english', ?)", search).
			Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL:                "recipes.created_at DESC, ts_rank(" + searchDocument + ", plainto_tsquery('english', ?)) DESC",
				Vars:               []interface{}{search},
				WithoutParentheses: true,
			}})
	default:
		query = query.Where(r.keywordMatch(search)).Order("recipes.created_at DESC")
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// keywordMatch is the fallback for databases without full-text search: a recipe
// matches when any search word appears in its title or description.
func (r *RecipeRepository) keywordMatch(search string) *gorm.DB {
	var cond *gorm.DB
	for _, word := range strings.Fields(strings.ToLower(search)) {
		like := "%" + escapeLike(word) + "%"
		expr := r.db.Where(
			"LOWER(recipes.title) LIKE ? ESCAPE '\\' OR LOWER(recipes.description) LIKE ? ESCAPE '\\'",
			like, like,
		)
		if cond == nil {
			cond = expr
		} else {
			cond = cond.Or(expr)
		}
	}
	return cond
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListFavorites returns the existing recipes in the user's favorites set, most
// recently favorited first. Ids of deleted recipes fall out of the join.
func (r *RecipeRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at DESC").
		Preload("User", ownerColumns).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) loadOwner(ctx context.Context, recipe *models.Recipe) error {
	var owner models.User
	if err := r.db.WithContext(ctx).Select("id", "name").First(&owner, "id = ?", recipe.UserID).Error; err != nil {
		return fmt.Errorf("failed to load recipe owner: %w", err)
	}
	recipe.User = &owner
	return nil
}
