// Package cache provides Redis-backed cache-aside helpers. All helpers
// degrade to no-ops when Redis is unavailable, so the application works
// without a cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/earlbread/multi-user-blog/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the process-wide Redis client, or nil when Redis is unreachable.
var Client *redis.Client

// InitRedis connects to Redis at the given address. A failed connection is
// logged and leaves the cache disabled.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis connection failed; continuing without cache",
			slog.String("error", err.Error()))
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the shared Redis client, or nil when caching is disabled.
func GetClient() *redis.Client {
	return Client
}
