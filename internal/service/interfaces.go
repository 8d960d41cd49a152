package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/types"
)

// UserStore is the credential store: users plus their favorites set.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}

// RecipeStore persists recipes.
type RecipeStore interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
}

// ImageStore uploads recipe images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// IRecipeService defines the interface for recipe and favorite operations
type IRecipeService interface {
	List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetImage(ctx context.Context, userID, id uuid.UUID, upload ImageUpload) (*models.Recipe, error)

	ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
}
