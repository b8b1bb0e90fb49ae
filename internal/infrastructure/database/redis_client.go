package database

import (
	"context"
	"log"
	"time"

	"bengal_portal/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the client behind the "redis" store backend and
// checks it answers before the server starts.
func ConnectRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[store][redis] ping failed addr=%s err=%v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil, err
	}
	log.Printf("[store][redis] client initialized addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return client, nil
}
