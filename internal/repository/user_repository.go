package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/heritage-recipes/backend/internal/models"
)

// UserRepository stores users, their credentials and their favorites set.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. ErrDuplicate means the email is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by its normalized email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Exists reports whether a user with id exists.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

// List returns every user ordered by creation time.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user together with its recipes and favorites. Other users'
// favorites pointing at the removed recipes are left alone.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RecipeFavorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipes: %w", err)
		}
		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddFavorite puts recipeID into the user's favorites set in one statement.
// It reports false when the recipe was already there.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"INSERT INTO recipe_favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
		userID, recipeID, time.Now().UTC(),
	)
	if result.Error != nil {
		return false, fmt.Errorf("failed to add favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RemoveFavorite takes recipeID out of the user's favorites set in one statement.
// It reports false when the recipe was not there.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM recipe_favorites WHERE user_id = ? AND recipe_id = ?",
		userID, recipeID,
	)
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ToggleFavorite flips membership of recipeID and returns whether it is a favorite
// afterwards. Both steps are single-row statements, so concurrent toggles on other
// recipes never clobber each other.
func (r *UserRepository) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	removed, err := r.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if _, err := r.AddFavorite(ctx, userID, recipeID); err != nil {
		return false, err
	}
	return true, nil
}

// FavoriteIDs returns the raw favorites set, including ids of recipes that no longer exist.
func (r *UserRepository) FavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.RecipeFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite ids: %w", err)
	}
	return ids, nil
}
