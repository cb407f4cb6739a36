package recipe

import (
	"Foodgram-Go/entities"
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error
		UpdateWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetBySlugAndAuthor(ctx context.Context, username, slug string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, tags []string, page, limit int) ([]*entities.Recipe, int64, error)
		GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error)
		GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entities.Recipe, error)
		Delete(ctx context.Context, id uuid.UUID) error
		GetIngredientsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredient, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateWithIngredients persists the recipe and its ingredient rows in one
// transaction so no reader ever observes a recipe without its ingredients.
func (r *recipeRepository) CreateWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RecipeID = recipe.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithIngredients saves the recipe and replaces its full ingredient set
// (delete-all, then reinsert) inside one transaction.
func (r *recipeRepository) UpdateWithIngredients(ctx context.Context, recipe *entities.Recipe, rows []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RecipeID = recipe.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetBySlugAndAuthor(ctx context.Context, username, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("recipes.slug = ? AND users.username = ?", slug, username).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, tags []string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if len(tags) > 0 {
		query = query.Where("tags && ?", pq.StringArray(tags))
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Author").
		Offset(offset).
		Limit(limit).
		Order("pub_date desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Delete removes the recipe; ingredient rows and favorites cascade at the
// store level.
func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetIngredientsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredient, error) {
	var rows []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
