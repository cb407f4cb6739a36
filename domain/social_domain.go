package domain

import "errors"

var (
	MessageSuccessGetFavorites    = "success get favorite recipes"
	MessageSuccessToggleFavorite  = "favorite processed"
	MessageSuccessRemoveFavorite  = "favorite removed"
	MessageFailedGetFavorites     = "failed to get favorite recipes"
	MessageFailedToggleFavorite   = "failed to process favorite"
	MessageFailedRemoveFavorite   = "failed to remove favorite"
	MessageSuccessGetFollows      = "success get subscriptions"
	MessageSuccessToggleFollow    = "subscription processed"
	MessageSuccessRemoveFollow    = "subscription removed"
	MessageFailedGetFollows       = "failed to get subscriptions"
	MessageFailedToggleFollow     = "failed to process subscription"
	MessageFailedRemoveFollow     = "failed to remove subscription"

	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFollowNotFound   = errors.New("subscription not found")
	ErrSelfFollow       = errors.New("cannot subscribe to yourself")
)

type (
	// ToggleRequest is the JSON body for both favorite and follow
	// creation: {"id": "<uuid>"}.
	ToggleRequest struct {
		ID string `json:"id" validate:"required,uuid"`
	}

	ToggleResponse struct {
		Success bool `json:"success"`
	}

	AuthorResponse struct {
		ID       string           `json:"id"`
		Username string           `json:"username"`
		Name     string           `json:"name"`
		Recipes  []RecipeResponse `json:"recipes,omitempty"`
	}

	AuthorListResponse struct {
		Title   string           `json:"title"`
		Tab     string           `json:"tab"`
		Authors []AuthorResponse `json:"authors"`
		Total   int64            `json:"total"`
		Page    int              `json:"page"`
		Limit   int              `json:"limit"`
	}
)
