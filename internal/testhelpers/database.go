package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/heritage-recipes/backend/internal/database"
	"github.com/pageza/heritage-recipes/backend/internal/models"
)

// SetupTestDatabase opens a private in-memory SQLite database with the schema applied.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err, "failed to open test database")

	// Every connection to :memory: is a fresh database, so pin the pool to one.
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	require.NoError(t, database.AutoMigrate(db.DB), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db.DB
}

// CreateTestUser inserts a user whose password is "password123".
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

// CreateTestRecipe inserts a minimal valid recipe owned by ownerID.
func CreateTestRecipe(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title, description string, category models.Category) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:        title,
		Description:  description,
		Ingredients:  models.StringList{"water"},
		Instructions: models.StringList{"boil"},
		Category:     category,
		PrepTime:     5,
		CookTime:     10,
		Servings:     2,
		UserID:       ownerID,
	}
	require.NoError(t, db.Omit("User").Create(recipe).Error, "failed to create test recipe")
	return recipe
}
