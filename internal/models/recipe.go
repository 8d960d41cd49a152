package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is an ordered list of strings stored as a JSON array.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is owned by the user that created it. UserID never changes after creation.
type Recipe struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Ingredients  StringList `gorm:"type:text;not null" json:"ingredients"`
	Instructions StringList `gorm:"type:text;not null" json:"instructions"`
	ImageURL     string     `gorm:"size:1024" json:"imageUrl,omitempty"`
	Cuisine      string     `gorm:"size:100" json:"cuisine,omitempty"`
	Diet         string     `gorm:"size:100" json:"diet,omitempty"`
	Category     Category   `gorm:"size:20;not null;index" json:"category"`
	PrepTime     int        `gorm:"not null" json:"prepTime"`
	CookTime     int        `gorm:"not null" json:"cookTime"`
	Servings     int        `gorm:"not null" json:"servings"`
	UserID       uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"userId"`
	User         *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// MarshalJSON renders the owner as {id, name} alongside the recipe fields.
func (r Recipe) MarshalJSON() ([]byte, error) {
	type recipe Recipe
	out := struct {
		recipe
		Owner *Owner `json:"owner,omitempty"`
	}{recipe: recipe(r)}
	if r.User != nil {
		out.Owner = &Owner{ID: r.User.ID, Name: r.User.Name}
	}
	return json.Marshal(out)
}
