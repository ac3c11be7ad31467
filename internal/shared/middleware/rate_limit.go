package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"sofa-backend/internal/infrastructure/metrics"
	"sofa-backend/internal/shared/view"
)

const limiterIdleTTL = time.Hour

// RateLimiter implements per-IP token buckets with periodic cleanup
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter cho phép attempts request mỗi window cho từng IP
func NewRateLimiter(attempts int, window time.Duration) *RateLimiter {
	if attempts < 1 {
		attempts = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Allow consumes one token for key
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = rl.now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.AllowN(rl.now(), 1)
}

// StartCleanup xoá limiter không dùng quá limiterIdleTTL, chạy tới khi Stop
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stop:
				return
			}
		}
	}()
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-limiterIdleTTL)
	for key, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// LoginRateLimit chặn brute-force POST /login theo client IP.
// Bị chặn → 429 với login view.
func LoginRateLimit(rl *RateLimiter, r view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := GetClientIP(c)
		if rl.Allow(ip) {
			c.Next()
			return
		}

		metrics.LoginAttempts.WithLabelValues("throttled").Inc()
		log.Warn().
			Str("request_id", c.GetString(requestIDKey)).
			Str("ip", ip).
			Msg("Login rate limit exceeded")

		r.Render(c, http.StatusTooManyRequests, view.PageLogin, view.Data{
			"error": "too many login attempts, try again later",
		})
		c.Abort()
	}
}
