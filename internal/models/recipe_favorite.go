package models

import (
	"time"

	"github.com/google/uuid"
)

// RecipeFavorite is one entry of a user's favorites set. The composite key keeps a
// recipe at most once per user. RecipeID is not a foreign key: favorites may outlive
// the recipe they point at.
type RecipeFavorite struct {
	UserID    uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"userId"`
	RecipeID  uuid.UUID `gorm:"type:varchar(36);primaryKey;index" json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
