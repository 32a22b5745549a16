package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"candidate-intake/internal/delivery/http/response"
	"candidate-intake/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Shared counter store; nil keeps counters in process memory
	Client *goredis.Client
	// Audit sink (default: security.DefaultLogger())
	Logger *security.SecurityLogger
	// Writes the rejection once the limit is exceeded (default: 429 envelope)
	OnLimit func(*gin.Context)
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	deleted bool // set by sweep; a holder must reload from the store
	mu      sync.Mutex
}

// memoryStore is the per-middleware fallback when Redis is absent or failing.
type memoryStore struct {
	entries   sync.Map
	mu        sync.Mutex
	nextSweep time.Time
}

const sweepInterval = 5 * time.Minute

// RateLimitMessage is the client message for a rejected request.
const RateLimitMessage = "Rate limit exceeded. Please try again later."

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// DefaultRateLimitConfig returns the global API limit: threshold requests per
// window and client IP.
func DefaultRateLimitConfig(threshold int, window time.Duration, client *goredis.Client, logger *security.SecurityLogger) RateLimitConfig {
	if threshold <= 0 {
		threshold = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{
		Limit:      threshold,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		Client: client,
		Logger: logger,
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config
// Uses Redis when configured, falls back to in-memory when not
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Logger == nil {
		config.Logger = security.DefaultLogger()
	}
	if config.OnLimit == nil {
		config.OnLimit = func(c *gin.Context) {
			response.Error(c, http.StatusTooManyRequests, RateLimitMessage, nil)
		}
	}
	store := &memoryStore{}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		var err error

		if config.Client != nil {
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), config.Client, fullKey, config)
			if err != nil {
				if config.FailClosed {
					logRateLimitError(c, config.Logger, "redis_error", err)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = store.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = store.hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			config.Logger.LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				response.RequestID(c),
				c.FullPath(),
			)

			config.OnLimit(c)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// hit counts one request for key and returns the running count and window end.
func (s *memoryStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.sweep(now)

	for {
		entryI, _ := s.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
		entry := entryI.(*rateLimitEntry)

		entry.mu.Lock()
		if entry.deleted {
			// Swept between load and lock
			entry.mu.Unlock()
			continue
		}
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(window)
		}
		entry.count++
		count, resetAt := entry.count, entry.resetAt
		entry.mu.Unlock()

		return count, resetAt
	}
}

// sweep drops expired entries at most once per sweepInterval.
func (s *memoryStore) sweep(now time.Time) {
	s.mu.Lock()
	if now.Before(s.nextSweep) {
		s.mu.Unlock()
		return
	}
	s.nextSweep = now.Add(sweepInterval)
	s.mu.Unlock()

	s.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			entry.deleted = true
			s.entries.CompareAndDelete(key, entry)
		}
		entry.mu.Unlock()
		return true
	})
}

func logRateLimitError(c *gin.Context, logger *security.SecurityLogger, errorType string, err error) {
	logger.Log(c.Request.Context(), security.SecurityEvent{
		Event: security.EventRateLimitTriggered,
		IP:    c.ClientIP(),
		Details: map[string]interface{}{
			"error_type": errorType,
			"error":      err.Error(),
		},
	})
}
