package config

import (
	"Foodgram-Go/internal/api/handlers"
	"Foodgram-Go/internal/api/routes"
	"Foodgram-Go/internal/middleware"
	"Foodgram-Go/internal/utils"
	"Foodgram-Go/internal/utils/storage"
	"Foodgram-Go/pkg/ingredient"
	"Foodgram-Go/pkg/jwt"
	"Foodgram-Go/pkg/purchase"
	"Foodgram-Go/pkg/recipe"
	"Foodgram-Go/pkg/session"
	"Foodgram-Go/pkg/social"
	"Foodgram-Go/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, redisClient *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	sessions := session.NewRedisStore(redisClient)

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	socialRepository := social.NewSocialRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, recipeRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository)
	socialService := social.NewSocialService(socialRepository, recipeRepository, userRepository)
	purchaseService := purchase.NewPurchaseService(sessions, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, purchaseService, validator, s3)
	socialHandler := handlers.NewSocialHandler(socialService, recipeService, validator)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		SocialHandler:     socialHandler,
		PurchaseHandler:   purchaseHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
