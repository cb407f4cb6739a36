package purchase

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/pkg/recipe"
	"Foodgram-Go/pkg/session"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListHeader opens every downloaded shopping list.
const ShoppingListHeader = "Shopping list by Foodgram"

// ShoppingListFilename is the attachment name for the download endpoint.
const ShoppingListFilename = "purchase_list.txt"

type (
	PurchaseService interface {
		AddPurchase(ctx context.Context, req domain.ToggleRequest, sessionID string) (bool, error)
		RemovePurchase(ctx context.Context, recipeID, sessionID string) (bool, error)
		GetPurchases(ctx context.Context, sessionID string) ([]domain.RecipeResponse, error)
		BuildShoppingList(ctx context.Context, sessionID string) (string, error)
		ToggleTag(ctx context.Context, sessionID, tag string) ([]string, error)
		ActiveTags(ctx context.Context, sessionID string) ([]string, error)
	}

	purchaseService struct {
		sessions         session.Store
		recipeRepository recipe.RecipeRepository
	}
)

func NewPurchaseService(sessions session.Store, recipeRepository recipe.RecipeRepository) PurchaseService {
	return &purchaseService{
		sessions:         sessions,
		recipeRepository: recipeRepository,
	}
}

// AddPurchase puts a recipe on the session's shopping selection. Adding an
// id that is already present reports success=false rather than erroring.
func (s *purchaseService) AddPurchase(ctx context.Context, req domain.ToggleRequest, sessionID string) (bool, error) {
	recipeUUID, err := uuid.Parse(req.ID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}
	return s.sessions.Add(ctx, sessionID, session.KeyPurchases, recipeUUID.String())
}

func (s *purchaseService) RemovePurchase(ctx context.Context, recipeID, sessionID string) (bool, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	if _, err := s.recipeRepository.GetByID(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}
	return s.sessions.Remove(ctx, sessionID, session.KeyPurchases, recipeUUID.String())
}

func (s *purchaseService) GetPurchases(ctx context.Context, sessionID string) ([]domain.RecipeResponse, error) {
	ids, err := s.sessions.List(ctx, sessionID, session.KeyPurchases)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(ids))
	for _, id := range ids {
		recipeUUID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		r, err := s.recipeRepository.GetByID(ctx, recipeUUID)
		if err != nil {
			// Recipes deleted since they were selected simply drop out.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		item := domain.RecipeResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			Description: r.Description,
			Slug:        r.Slug,
			Tags:        []string(r.Tags),
			CookingTime: r.CookingTime,
			ImageURL:    r.ImageURL,
			AuthorID:    r.AuthorID.String(),
			PubDate:     r.PubDate,
		}
		if r.Author != nil {
			item.Author = r.Author.Username
		}
		res = append(res, item)
	}
	return res, nil
}

// BuildShoppingList aggregates the ingredient rows of every selected recipe
// into the downloadable text report. Grouping keys on the ingredient id;
// rows that share a title are merged for display only when their dimensions
// agree, otherwise the build fails with ErrConflictingUnits. Line order is
// first-encounter order over the selection scan, so the output is
// deterministic for an unchanged selection.
func (s *purchaseService) BuildShoppingList(ctx context.Context, sessionID string) (string, error) {
	ids, err := s.sessions.List(ctx, sessionID, session.KeyPurchases)
	if err != nil {
		return "", err
	}

	type group struct {
		title     string
		dimension string
		amount    int
	}
	var groups []*group
	byTitle := make(map[string]*group)
	seenRecipe := make(map[string]bool)

	for _, id := range ids {
		if seenRecipe[id] {
			continue
		}
		seenRecipe[id] = true

		recipeUUID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		rows, err := s.recipeRepository.GetIngredientsByRecipeID(ctx, recipeUUID)
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			if row.Ingredient == nil {
				continue
			}
			key := strings.ToLower(row.Ingredient.Title)
			g, ok := byTitle[key]
			if !ok {
				g = &group{
					title:     row.Ingredient.Title,
					dimension: row.Ingredient.Dimension,
				}
				byTitle[key] = g
				groups = append(groups, g)
			} else if g.dimension != row.Ingredient.Dimension {
				return "", fmt.Errorf("%w: %s measured in %q and %q",
					domain.ErrConflictingUnits, g.title, g.dimension, row.Ingredient.Dimension)
			}
			g.amount += row.Amount
		}
	}

	if len(groups) == 0 {
		return "", domain.ErrEmptySelection
	}

	var b strings.Builder
	b.WriteString(ShoppingListHeader)
	b.WriteString("\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "%s - %d%s\n", capitalize(g.title), g.amount, g.dimension)
	}
	return b.String(), nil
}

// ToggleTag flips a tag filter on the session's active list: present tags
// are removed by value, absent ones appended.
func (s *purchaseService) ToggleTag(ctx context.Context, sessionID, tag string) ([]string, error) {
	if !domain.IsValidTag(tag) {
		return nil, domain.ErrInvalidTag
	}
	return s.sessions.Toggle(ctx, sessionID, session.KeyTagList, tag)
}

func (s *purchaseService) ActiveTags(ctx context.Context, sessionID string) ([]string, error) {
	return s.sessions.List(ctx, sessionID, session.KeyTagList)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
