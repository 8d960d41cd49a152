// Package app assembles the repositories and services shared by the server
// and the maintenance commands.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/auth"
	"github.com/pageza/heritage-recipes/backend/internal/database"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
	"github.com/pageza/heritage-recipes/backend/internal/service"
)

// App holds the wired application components.
type App struct {
	DB            *database.DB
	Users         *repository.UserRepository
	Recipes       *repository.RecipeRepository
	AuthService   *service.AuthService
	RecipeService *service.RecipeService
}

// New connects to the configured database, applies migrations and wires the
// services. images may be nil when uploads are disabled.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, images service.ImageStore) (*App, error) {
	db, err := database.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(ctx, db.DB, cfg.MigrationsDir, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return Wire(db, cfg, images), nil
}

// Wire builds the repositories and services on top of an open database.
func Wire(db *database.DB, cfg *config.Config, images service.ImageStore) *App {
	users := repository.NewUserRepository(db.DB)
	recipes := repository.NewRecipeRepository(db.DB)
	return &App{
		DB:            db,
		Users:         users,
		Recipes:       recipes,
		AuthService:   service.NewAuthService(users, auth.NewBcryptHasher(0), auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)),
		RecipeService: service.NewRecipeService(recipes, users, images),
	}
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.DB.Close()
}
