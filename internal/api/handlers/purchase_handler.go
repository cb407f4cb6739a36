package handlers

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/internal/api/presenters"
	"Foodgram-Go/pkg/purchase"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		GetPurchases(c *fiber.Ctx) error
		AddPurchase(c *fiber.Ctx) error
		RemovePurchase(c *fiber.Ctx) error
		DownloadPurchases(c *fiber.Ctx) error
		ToggleTag(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		purchaseService purchase.PurchaseService
		validator       *validator.Validate
	}
)

func NewPurchaseHandler(purchaseService purchase.PurchaseService, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *purchaseHandler) GetPurchases(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	recipes, err := h.purchaseService.GetPurchases(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, domain.RecipeListResponse{
		Title:   purchasesView.Title,
		Tab:     purchasesView.Tab,
		Recipes: recipes,
		Total:   int64(len(recipes)),
	}, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

// AddPurchase reports {"success": false} when the recipe is already on the
// selection; a missing recipe id is a 404.
func (h *purchaseHandler) AddPurchase(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.ToggleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	added, err := h.purchaseService.AddPurchase(c.Context(), *req, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddPurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: added})
}

func (h *purchaseHandler) RemovePurchase(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	recipeID := c.Params("recipe_id")

	removed, err := h.purchaseService.RemovePurchase(c.Context(), recipeID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemovePurchase, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemovePurchase, err)
	}

	return c.Status(fiber.StatusOK).JSON(domain.ToggleResponse{Success: removed})
}

// DownloadPurchases serves the aggregated shopping list as a plain-text
// attachment; an empty selection redirects back to the purchases view.
func (h *purchaseHandler) DownloadPurchases(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	content, err := h.purchaseService.BuildShoppingList(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySelection) {
			return c.Redirect("/purchases", fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrConflictingUnits) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDownload, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDownload, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", purchase.ShoppingListFilename))
	return c.SendString(content)
}

func (h *purchaseHandler) ToggleTag(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	tag := c.Params("tag")

	tags, err := h.purchaseService.ToggleTag(c.Context(), sessionID, tag)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTag) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleTag, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleTag, err)
	}

	return presenters.SuccessResponse(c, domain.TagListResponse{Tags: tags}, fiber.StatusOK, domain.MessageSuccessToggleTag)
}
