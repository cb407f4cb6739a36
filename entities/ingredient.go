// File: entities/ingredient.go
package entities

import (
	"github.com/google/uuid"
)

// Ingredient is a catalog entry. Recipes attach ingredients by the
// (title, dimension) pair; the title alone is not unique.
type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title     string    `gorm:"uniqueIndex:idx_ingredient_title_dimension" json:"title"`
	Dimension string    `gorm:"uniqueIndex:idx_ingredient_title_dimension" json:"dimension"`

	Timestamp
}
