package handlers

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/internal/api/presenters"
	"Foodgram-Go/internal/utils/storage"
	"Foodgram-Go/pkg/purchase"
	"Foodgram-Go/pkg/recipe"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeForm(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipeForEdit(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService   recipe.RecipeService
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
		s3              storage.AwsS3
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, purchaseService purchase.PurchaseService, validator *validator.Validate, s3 storage.AwsS3) RecipeHandler {
	return &recipeHandler{
		recipeService:   recipeService,
		purchaseService: purchaseService,
		validator:       validator,
		s3:              s3,
	}
}

func readViewPath(username, slug string) string {
	return fmt.Sprintf("/%s/%s", username, slug)
}

// GetRecipes is the index listing, filtered by the session's active tags.
func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	page, limit := parsePagination(c)

	tags, err := h.purchaseService.ActiveTags(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), tags, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, domain.RecipeListResponse{
		Title:   indexView.Title,
		Tab:     indexView.Tab,
		Recipes: recipes,
		Total:   count,
		Page:    page,
		Limit:   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// GetRecipeForm returns the scaffold the create form needs (the tag choices).
func (h *recipeHandler) GetRecipeForm(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"tags": domain.Tags,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponseWithData(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err,
			domain.RecipeFormEcho{Form: *req, Error: err.Error()})
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return h.saveRecipeError(c, domain.MessageFailedCreateRecipe, err, *req)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	username := c.Params("username")
	slug := c.Params("slug")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), username, slug)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

// GetRecipeForEdit serves the edit form; a non-author is redirected to the
// read view rather than told no.
func (h *recipeHandler) GetRecipeForEdit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	username := c.Params("username")
	slug := c.Params("slug")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), username, slug)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}
	if res.AuthorID != userID {
		return c.Redirect(readViewPath(username, slug), fiber.StatusFound)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipe": res,
		"tags":   domain.Tags,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	username := c.Params("username")
	slug := c.Params("slug")
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponseWithData(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err,
			domain.RecipeFormEcho{Form: *req, Error: err.Error()})
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), username, slug, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotRecipeAuthor) {
			return c.Redirect(readViewPath(username, slug), fiber.StatusFound)
		}
		return h.saveRecipeError(c, domain.MessageFailedUpdateRecipe, err, *req)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	username := c.Params("username")
	slug := c.Params("slug")

	if err := h.recipeService.DeleteRecipe(c.Context(), username, slug, userID); err != nil {
		if errors.Is(err, domain.ErrNotRecipeAuthor) {
			return c.Redirect(readViewPath(username, slug), fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.s3.UploadFile(c.Context(), file, "recipes")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

// saveRecipeError maps the form-processing failures: validation errors echo
// the submission back, a missing ingredient is a 404.
func (h *recipeHandler) saveRecipeError(c *fiber.Ctx, message string, err error, req domain.SaveRecipeRequest) error {
	switch {
	case errors.Is(err, domain.ErrIngredientsRequired),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidTag),
		errors.Is(err, domain.ErrInvalidCookTime):
		return presenters.ErrorResponseWithData(c, fiber.StatusBadRequest, message, err,
			domain.RecipeFormEcho{Form: req, Error: err.Error()})
	case errors.Is(err, domain.ErrIngredientNotFound), errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
}
