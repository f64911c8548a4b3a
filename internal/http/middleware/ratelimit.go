// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements per-identity rate limiting. RateLimit is the Gin
// middleware; the counting is delegated to a Limiter so the same middleware
// runs on the in-process token bucket (RateLimiter, golang.org/x/time/rate)
// or on the shared Redis window (RedisRateLimiter) when several replicas
// must enforce one budget.
//
// Health, metrics and swagger routes are never limited, and idempotent
// replays flagged by IdempotencyValidator skip the limiter entirely.
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyFunc maps a request to a rate-limit bucket.
type KeyFunc func(*gin.Context) string

// KeyByUserOrIP keys on the resolved user when one was supplied and on the
// client IP otherwise. Namespaces are prefixed so they cannot collide.
func KeyByUserOrIP() KeyFunc {
	return func(c *gin.Context) string {
		if uid := UserID(c); uid != DefaultUserID {
			return "user:" + uid
		}
		return "ip:" + c.ClientIP()
	}
}

// Limiter decides whether key may spend one request. retryAfter is a hint
// for the Retry-After header when the request is refused.
type Limiter interface {
	Allow(ctx context.Context, key string) (ok bool, retryAfter time.Duration, err error)
}

// IsRateBypass reports whether IdempotencyValidator exempted the request.
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

var unlimitedPrefixes = []string{"/health", "/metrics", "/swagger"}

// RateLimit enforces lim per keyFn. A limiter error lets the request through
// and is logged; availability wins over strictness.
func RateLimit(lim Limiter, keyFn KeyFunc) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = KeyByUserOrIP()
	}
	return func(c *gin.Context) {
		if IsRateBypass(c) || isUnlimitedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		ok, retry, err := lim.Allow(c.Request.Context(), keyFn(c))
		if err != nil {
			LoggerFrom(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if ok {
			c.Next()
			return
		}

		secs := int(retry.Round(time.Second) / time.Second)
		c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "too_many_requests",
			"message":    "rate limit exceeded",
		})
	}
}

func isUnlimitedPath(p string) bool {
	for _, pre := range unlimitedPrefixes {
		if strings.HasPrefix(p, pre) {
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// In-process token buckets

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key in memory. Idle buckets are
// evicted opportunistically every few thousand lookups. Safe for concurrent
// use; limits are per process.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn KeyFunc

	mu       sync.Mutex
	visitors map[string]*visitor
	ttl      time.Duration
	lookups  uint64
}

// NewRateLimiter builds a limiter refilling rps tokens per second with the
// given burst (coerced to at least 1).
func NewRateLimiter(rps float64, burst int, keyFn KeyFunc) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    max(burst, 1),
		keyFn:    keyFn,
		visitors: make(map[string]*visitor),
		ttl:      10 * time.Minute,
	}
}

// Allow implements Limiter.
func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	lim := rl.bucket(key)
	if lim.Allow() {
		return true, 0, nil
	}
	retry := time.Second
	if rl.rps > 0 {
		retry = time.Duration(float64(time.Second) / float64(rl.rps))
	}
	return false, retry, nil
}

// Handler is RateLimit bound to this limiter and its key function.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return RateLimit(rl, rl.keyFn)
}

// bucket returns the limiter for key. Eviction runs before the lookup so a
// stale bucket is replaced even when it is the one being asked for.
func (rl *RateLimiter) bucket(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= 5000 {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// size reports the number of live buckets.
func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}
