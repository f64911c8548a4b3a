package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests per key in fixed windows stored in Redis,
// so every replica behind a load balancer spends the same budget.
//
// Each window is its own key (prefix:key:windowStart) with a TTL of one
// window; INCR and EXPIRE run in a single MULTI so a crash between them
// cannot leave a counter without expiry.
type RedisRateLimiter struct {
	client  redis.Cmdable
	limit   int64
	window  time.Duration
	prefix  string
	timeout time.Duration
	now     func() time.Time
}

// NewRedisRateLimiter allows limit requests per window for each key.
func NewRedisRateLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisRateLimiter {
	if window <= 0 {
		window = time.Second
	}
	return &RedisRateLimiter{
		client:  client,
		limit:   int64(max(limit, 1)),
		window:  window,
		prefix:  "docsearch:rl",
		timeout: 100 * time.Millisecond,
		now:     time.Now,
	}
}

// Allow implements Limiter. Redis failures are returned as errors; RateLimit
// then lets the request through.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := r.now()
	start := now.Truncate(r.window)
	k := fmt.Sprintf("%s:%s:%d", r.prefix, key, start.Unix())

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, r.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("redis rate limit: %w", err)
	}
	if incr.Val() > r.limit {
		return false, start.Add(r.window).Sub(now), nil
	}
	return true, 0, nil
}
