package main

import (
	"Foodgram-Go/cmd/config"
	migration "Foodgram-Go/cmd/database/migrate"
	"Foodgram-Go/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	app, err := config.NewApp(db, redisClient)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
