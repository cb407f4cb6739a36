package domain

import "errors"

var (
	MessageSuccessGetIngredients = "success get ingredients"
	MessageFailedGetIngredients  = "failed to get ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrQueryRequired      = errors.New("query parameter is required")
)

type IngredientResponse struct {
	Title     string `json:"title"`
	Dimension string `json:"dimension"`
}
