package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts requests per key within a fixed time window.
// Key format: ratelimit:<key>:<window_index>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether the caller identified by key may proceed. The
// counter key expires one extra window later so stragglers from a finished
// window still decay.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Incr(ctx, l.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(key), 2*l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}

func (l *FixedWindowLimiter) key(key string) string {
	window := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, window)
}
