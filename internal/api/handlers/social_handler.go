package handlers

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/internal/api/presenters"
	"Foodgram-Go/pkg/recipe"
	"Foodgram-Go/pkg/social"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SocialHandler interface {
		GetFavorites(c *fiber.Ctx) error
		ToggleFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
		ToggleSubscription(c *fiber.Ctx) error
		RemoveSubscription(c *fiber.Ctx) error
	}

	socialHandler struct {
		socialService social.SocialService
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewSocialHandler(socialService social.SocialService, recipeService recipe.RecipeService, validator *validator.Validate) SocialHandler {
	return &socialHandler{
		socialService: socialService,
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *socialHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	recipes, count, err := h.recipeService.GetFavoriteRecipes(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, domain.RecipeListResponse{
		Title:   favoritesView.Title,
		Tab:     favoritesView.Tab,
		Recipes: recipes,
		Total:   count,
		Page:    page,
		Limit:   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

// ToggleFavorite answers {"success": false} for an already-favorited recipe
// instead of an error status.
func (h *socialHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFavorite, err)
	}

	created, err := h.socialService.FavoriteRecipe(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFavorite, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: created})
}

func (h *socialHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("recipe_id")

	if err := h.socialService.UnfavoriteRecipe(c.Context(), recipeID, userID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) || errors.Is(err, domain.ErrFavoriteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: true})
}

func (h *socialHandler) GetSubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	authors, count, err := h.socialService.GetFollowedAuthors(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollows, err)
	}

	return presenters.SuccessResponse(c, domain.AuthorListResponse{
		Title:   subscriptionsView.Title,
		Tab:     subscriptionsView.Tab,
		Authors: authors,
		Total:   count,
		Page:    page,
		Limit:   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetFollows)
}

func (h *socialHandler) ToggleSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
	}

	created, err := h.socialService.FollowAuthor(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleFollow, err)
		case errors.Is(err, domain.ErrSelfFollow):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: created})
}

func (h *socialHandler) RemoveSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	authorID := c.Params("user_id")

	if err := h.socialService.UnfollowAuthor(c.Context(), authorID, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrFollowNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFollow, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFollow, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: true})
}
