package database

import (
	"context"
	"fmt"

	"github.com/mergington/octofit-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB is the global Redis client. It stays nil when no address is configured;
// callers treat a nil client as "cache disabled".
var RDB *redis.Client

// Ctx is the shared context for Redis operations.
var Ctx = context.Background()

// InitRedis connects to Redis when an address is configured.
func InitRedis(cfg config.RedisConfig) {
	if cfg.Address == "" {
		fmt.Println("Redis not configured, leaderboard cache disabled.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		panic("failed to connect to Redis: " + err.Error())
	}

	fmt.Println("Redis connection established.")
}
