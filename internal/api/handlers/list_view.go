package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// listView parametrizes the list-style endpoints (index, favorites,
// subscriptions, purchases) that share one response shape and differ only in
// title, tab and data source.
type listView struct {
	Title string
	Tab   string
}

var (
	indexView         = listView{Title: "Recipes", Tab: "index"}
	favoritesView     = listView{Title: "Favorites", Tab: "favorites"}
	subscriptionsView = listView{Title: "Subscriptions", Tab: "subscriptions"}
	purchasesView     = listView{Title: "Shopping list", Tab: "purchases"}
)

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
