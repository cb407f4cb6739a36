package ingredient

import (
	"Foodgram-Go/domain"
	"context"
	"strings"
)

type (
	IngredientService interface {
		Search(ctx context.Context, query string) ([]domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

// Search returns all ingredients whose title starts with the query,
// case-insensitively, projected to title and dimension.
func (s *ingredientService) Search(ctx context.Context, query string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.SearchByPrefix(ctx, strings.ToLower(query))
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		res = append(res, domain.IngredientResponse{
			Title:     ing.Title,
			Dimension: ing.Dimension,
		})
	}
	return res, nil
}
