package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CheckRateLimit checks if a resource has exceeded its rate limit.
// Returns true if allowed, false if limit exceeded. Fails open when Redis is
// unavailable so that a cache outage never locks users out.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and set EXPIRE if new
	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing limit requests per window for
// the named resource, keyed by client IP. Only POSTs are counted; form GETs
// stay unthrottled.
func RateLimit(rdb *redis.Client, resource string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}

		allowed, err := CheckRateLimit(c.Context(), rdb, resource, c.IP(), limit, window)
		if err != nil {
			Logger.Warn("rate limit check failed", "resource", resource, "error", err.Error())
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many attempts. Please try again later.")
		}

		return c.Next()
	}
}
