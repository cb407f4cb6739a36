package config

import (
	"Foodgram-Go/internal/utils"
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() (*redis.Client, error) {
	db, err := strconv.Atoi(utils.GetConfig("REDIS_DB"))
	if err != nil {
		db = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", utils.GetConfig("REDIS_HOST"), utils.GetConfig("REDIS_PORT")),
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
		return nil, err
	}
	return client, nil
}
