package recipe

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/entities"
	"Foodgram-Go/pkg/ingredient"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, username, slugName string, req domain.SaveRecipeRequest, actorID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, username, slugName, actorID string) error
		GetRecipeDetail(ctx context.Context, username, slugName string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, tags []string, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetFavoriteRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ingredientRepository ingredient.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

// resolveIngredientRows checks the three parallel form lists and resolves
// every (name, unit) pair against the ingredient catalog. Duplicate pairs
// are skipped, keeping the first occurrence.
func (s *recipeService) resolveIngredientRows(ctx context.Context, req domain.SaveRecipeRequest) ([]entities.RecipeIngredient, error) {
	names, units, amounts := req.IngredientNames, req.IngredientUnits, req.IngredientAmounts

	if len(names) == 0 || len(names) != len(units) || len(names) != len(amounts) {
		return nil, domain.ErrIngredientsRequired
	}
	for _, amount := range amounts {
		if amount < 0 {
			return nil, domain.ErrNegativeAmount
		}
	}

	rows := make([]entities.RecipeIngredient, 0, len(names))
	seen := make(map[uuid.UUID]bool, len(names))
	for i := range names {
		ing, err := s.ingredientRepository.GetByTitleAndDimension(ctx, names[i], units[i])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrIngredientNotFound
			}
			return nil, err
		}
		if seen[ing.ID] {
			continue
		}
		seen[ing.ID] = true
		rows = append(rows, entities.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       amounts[i],
			Ingredient:   ing,
		})
	}
	return rows, nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if !domain.IsValidTag(tag) {
			return domain.ErrInvalidTag
		}
	}
	return nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	if req.CookingTime < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookTime
	}
	if err := validateTags(req.Tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	rows, err := s.resolveIngredientRows(ctx, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		AuthorID:    authorUUID,
		Name:        req.Name,
		Description: req.Description,
		Slug:        slug.Make(req.Name),
		Tags:        pq.StringArray(req.Tags),
		CookingTime: req.CookingTime,
		ImageURL:    req.ImageURL,
		PubDate:     time.Now(),
	}

	if err := s.recipeRepository.CreateWithIngredients(ctx, recipe, rows); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, rows), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, username, slugName string, req domain.SaveRecipeRequest, actorID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetBySlugAndAuthor(ctx, username, slugName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.AuthorID.String() != actorID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeAuthor
	}

	if req.CookingTime < 1 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookTime
	}
	if err := validateTags(req.Tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	rows, err := s.resolveIngredientRows(ctx, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Slug = slug.Make(req.Name)
	recipe.Tags = pq.StringArray(req.Tags)
	recipe.CookingTime = req.CookingTime
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	recipe.PubDate = time.Now()

	if err := s.recipeRepository.UpdateWithIngredients(ctx, recipe, rows); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, rows), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, username, slugName, actorID string) error {
	recipe, err := s.recipeRepository.GetBySlugAndAuthor(ctx, username, slugName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID.String() != actorID {
		return domain.ErrNotRecipeAuthor
	}
	return s.recipeRepository.Delete(ctx, recipe.ID)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, username, slugName string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetBySlugAndAuthor(ctx, username, slugName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	rows, err := s.recipeRepository.GetIngredientsByRecipeID(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	items := make([]entities.RecipeIngredient, 0, len(rows))
	for _, row := range rows {
		items = append(items, *row)
	}
	return toRecipeResponse(recipe, items), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, tags []string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, tags, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}
	recipes, count, err := s.recipeRepository.GetFavoriteRecipes(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func toRecipeResponse(recipe *entities.Recipe, rows []entities.RecipeIngredient) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		Slug:        recipe.Slug,
		Tags:        []string(recipe.Tags),
		CookingTime: recipe.CookingTime,
		ImageURL:    recipe.ImageURL,
		AuthorID:    recipe.AuthorID.String(),
		PubDate:     recipe.PubDate,
	}
	if recipe.Author != nil {
		res.Author = recipe.Author.Username
	}
	for _, row := range rows {
		if row.Ingredient == nil {
			continue
		}
		res.Ingredients = append(res.Ingredients, domain.RecipeIngredientItem{
			Title:     row.Ingredient.Title,
			Dimension: row.Ingredient.Dimension,
			Amount:    row.Amount,
		})
	}
	return res
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r, nil))
	}
	return res
}
