// File: entities/recipe.go
package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID    uuid.UUID      `gorm:"index" json:"author_id"`
	Name        string         `json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Slug        string         `gorm:"index" json:"slug"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	CookingTime int            `json:"cooking_time"`
	ImageURL    string         `json:"image_url,omitempty"`
	PubDate     time.Time      `gorm:"type:timestamp" json:"pub_date"`

	Author      *User              `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Timestamp
}

// RecipeIngredient ties one ingredient with its amount to a recipe. Rows are
// lifetime-bound to the recipe and unique per (recipe, ingredient) pair.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int       `json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
	Timestamp
}
