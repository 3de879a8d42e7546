package cache

import (
	"Smart-Fridge-Backend/internal/utils"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis using the configured address.
// Returns nil when Redis is not configured or unreachable; callers
// treat a nil client as "cache disabled" and read straight from the
// repository.
func NewRedisClient() *redis.Client {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, product cache disabled: %v", err)
		return nil
	}

	return client
}
