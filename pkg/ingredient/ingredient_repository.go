package ingredient

import (
	"Foodgram-Go/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetByTitleAndDimension(ctx context.Context, title, dimension string) (*entities.Ingredient, error)
		SearchByPrefix(ctx context.Context, prefix string) ([]*entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByTitleAndDimension(ctx context.Context, title, dimension string) (*entities.Ingredient, error) {
	var ing entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("title = ? AND dimension = ?", title, dimension).
		First(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// escapeLike neutralizes LIKE wildcards so the prefix is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *ingredientRepository) SearchByPrefix(ctx context.Context, prefix string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", escapeLike(prefix)+"%").
		Order("title asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
