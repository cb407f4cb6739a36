package handlers

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/internal/api/presenters"
	"Foodgram-Go/pkg/ingredient"

	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		ListIngredients(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

// ListIngredients is the autocomplete endpoint: case-insensitive prefix
// match on title. A missing query parameter is a client error.
func (h *ingredientHandler) ListIngredients(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("query") {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, domain.ErrQueryRequired)
	}

	res, err := h.ingredientService.Search(c.Context(), c.Query("query"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
