package routes

import (
	"Foodgram-Go/domain"
	"Foodgram-Go/internal/api/handlers"
	"Foodgram-Go/internal/api/presenters"
	"Foodgram-Go/internal/middleware"
	"Foodgram-Go/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	SocialHandler     handlers.SocialHandler
	PurchaseHandler   handlers.PurchaseHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.SessionMiddleware())

	c.Auth()
	c.Recipes()
	c.Social()
	c.Purchases()
	c.Ingredients()
	c.Tags()
	// Registered last: the username/slug routes are catch-alls.
	c.RecipePages()
	c.NotFound()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		auth.Post("/forgot", c.UserHandler.ForgotPassword)
		auth.Post("/reset", c.UserHandler.ResetPassword)
	}
	c.App.Get("/users/:username", c.UserHandler.GetAuthorProfile)
}

func (c *Config) Recipes() {
	c.App.Get("/", c.RecipeHandler.GetRecipes)
	c.App.Get("/recipes/new", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeForm)
	c.App.Post("/recipes/new", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	c.App.Post("/recipes/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Social() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/recipes/favorites", auth, c.SocialHandler.GetFavorites)
	c.App.Post("/recipes/favorites", auth, c.SocialHandler.ToggleFavorite)
	c.App.Delete("/recipes/favorites/:recipe_id", auth, c.SocialHandler.RemoveFavorite)

	c.App.Get("/subscriptions", auth, c.SocialHandler.GetSubscriptions)
	c.App.Post("/subscriptions", auth, c.SocialHandler.ToggleSubscription)
	c.App.Delete("/subscriptions/:user_id", auth, c.SocialHandler.RemoveSubscription)
}

func (c *Config) Purchases() {
	c.App.Get("/purchases", c.PurchaseHandler.GetPurchases)
	c.App.Post("/purchases", c.PurchaseHandler.AddPurchase)
	c.App.Get("/purchases/download", c.PurchaseHandler.DownloadPurchases)
	c.App.Delete("/purchases/:recipe_id", c.PurchaseHandler.RemovePurchase)
}

func (c *Config) Ingredients() {
	c.App.Get("/ingredients", c.IngredientHandler.ListIngredients)
}

func (c *Config) Tags() {
	c.App.Get("/tags/:tag", c.PurchaseHandler.ToggleTag)
	c.App.Post("/tags/:tag", c.PurchaseHandler.ToggleTag)
}

func (c *Config) RecipePages() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/:username/:slug/edit", auth, c.RecipeHandler.GetRecipeForEdit)
	c.App.Post("/:username/:slug/edit", auth, c.RecipeHandler.UpdateRecipe)
	c.App.Post("/:username/:slug/delete", auth, c.RecipeHandler.DeleteRecipe)
	c.App.Get("/:username/:slug", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) NotFound() {
	c.App.Use(func(ctx *fiber.Ctx) error {
		return presenters.ErrorResponseWithData(
			ctx,
			fiber.StatusNotFound,
			domain.MessageFailedProcessRequest,
			nil,
			fiber.Map{"path": ctx.Path()},
		)
	})
}
