package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimiterRedis implements a fixed-window counter per key.
type RateLimiterRedis struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
}

func NewRateLimiterRedis(client *redis.Client, limit int, window time.Duration) *RateLimiterRedis {
	return &RateLimiterRedis{
		Client: client,
		Limit:  limit,
		Window: window,
	}
}

// Allow increments the caller's window counter and reports whether the
// count is still within the limit.
func (r *RateLimiterRedis) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key

	n, err := r.Client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}

	// First hit opens the window.
	if n == 1 {
		if err := r.Client.Expire(ctx, k, r.Window).Err(); err != nil {
			return false, err
		}
	}

	return n <= int64(r.Limit), nil
}
