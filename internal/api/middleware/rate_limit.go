package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateCounter is the slice of the Redis API the limiter needs. *redis.Client
// satisfies it; tests substitute an in-memory fake.
type RateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RateLimitPolicy caps requests per caller over a fixed window.
type RateLimitPolicy struct {
	Prefix string
	Limit  int
	Window time.Duration
}

// RateLimit enforces a fixed-window per-IP cap backed by Redis counters.
// When Redis is unreachable the request is allowed through: the thresholds
// are an abuse guard, not an availability dependency.
func RateLimit(counter RateCounter, policy RateLimitPolicy, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := policy.Prefix + ":" + c.ClientIP()

		count, err := incrWithTTL(ctx, counter, key, policy.Window)
		if err != nil {
			logger.Warn("rate limit counter unavailable", slog.String("error", err.Error()))
			c.Next()
			return
		}

		if count > int64(policy.Limit) {
			retryAfter := policy.Window
			if ttl, err := counter.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests. Please try again later."},
			})
			return
		}

		c.Next()
	}
}

func incrWithTTL(ctx context.Context, counter RateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := counter.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = counter.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}
