package domain

import "errors"

var (
	MessageSuccessGetPurchases   = "success get shopping list"
	MessageSuccessAddPurchase    = "purchase processed"
	MessageSuccessRemovePurchase = "purchase removed"
	MessageFailedGetPurchases    = "failed to get shopping list"
	MessageFailedAddPurchase     = "failed to process purchase"
	MessageFailedRemovePurchase  = "failed to remove purchase"
	MessageFailedDownload        = "failed to build shopping list"
	MessageSuccessToggleTag      = "tag filter updated"
	MessageFailedToggleTag       = "failed to update tag filter"

	// ErrEmptySelection means there is nothing to aggregate; the caller
	// redirects to the purchases view instead of producing a file.
	ErrEmptySelection = errors.New("selection set is empty")

	// ErrConflictingUnits is raised when two selected ingredients share a
	// title but disagree on the unit of measure, which would make a summed
	// line meaningless.
	ErrConflictingUnits = errors.New("conflicting units for ingredient title")
)

type (
	ShoppingLine struct {
		Title     string `json:"title"`
		Amount    int    `json:"amount"`
		Dimension string `json:"dimension"`
	}

	TagListResponse struct {
		Tags []string `json:"tags"`
	}
)
