package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe detail"
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessUploadImage   = "recipe image uploaded successfully"
	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedGetRecipe      = "failed to get recipe detail"
	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedUpdateRecipe   = "failed to update recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedUploadImage    = "failed to upload recipe image"

	// Form-level errors carried back to the client with the submitted
	// fields so the form can be re-rendered.
	ErrIngredientsRequired = errors.New("add ingredients")
	ErrNegativeAmount      = errors.New("quantity must be non-negative")

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidTag      = errors.New("unknown tag")
	ErrInvalidCookTime = errors.New("cooking time must be at least 1")
	ErrNotRecipeAuthor = errors.New("only the author may modify a recipe")
)

type (
	// SaveRecipeRequest carries the recipe form: scalar fields plus three
	// parallel ingredient lists of equal length.
	SaveRecipeRequest struct {
		Name        string   `json:"name" form:"name" validate:"required,max=75"`
		Description string   `json:"description" form:"description" validate:"max=200"`
		Tags        []string `json:"tags" form:"tags"`
		CookingTime int      `json:"cooking_time" form:"cooking_time" validate:"required,min=1"`
		ImageURL    string   `json:"image_url" form:"image_url"`

		IngredientNames   []string `json:"nameIngredient" form:"nameIngredient"`
		IngredientUnits   []string `json:"unitsIngredient" form:"unitsIngredient"`
		IngredientAmounts []int    `json:"valueIngredient" form:"valueIngredient"`
	}

	RecipeIngredientItem struct {
		Title     string `json:"title"`
		Dimension string `json:"dimension"`
		Amount    int    `json:"amount"`
	}

	RecipeResponse struct {
		ID          string                 `json:"id"`
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Slug        string                 `json:"slug"`
		Tags        []string               `json:"tags"`
		CookingTime int                    `json:"cooking_time"`
		ImageURL    string                 `json:"image_url,omitempty"`
		Author      string                 `json:"author"`
		AuthorID    string                 `json:"author_id"`
		PubDate     time.Time              `json:"pub_date"`
		IsFavorited bool                   `json:"is_favorited,omitempty"`
		Ingredients []RecipeIngredientItem `json:"ingredients,omitempty"`
	}

	// RecipeFormEcho is returned alongside a validation error so the
	// client can re-render the form with the prior input intact.
	RecipeFormEcho struct {
		Form  SaveRecipeRequest `json:"form"`
		Error string            `json:"ing_error"`
	}

	RecipeListResponse struct {
		Title   string           `json:"title"`
		Tab     string           `json:"tab"`
		Recipes []RecipeResponse `json:"recipes"`
		Total   int64            `json:"total"`
		Page    int              `json:"page"`
		Limit   int              `json:"limit"`
	}
)
