package middleware

import (
	"net/http"
	"sync"

	"fourdx-backend/internal/logger"
	"fourdx-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxLimiters bounds the per-client map; it is reset when exceeded.
const maxLimiters = 10000

// RateLimiter throttles write requests per client IP
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a new rate limiter. A zero rate disables limiting;
// an enabled limiter always admits at least one request per client.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond > 0 && burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

// Handler limits POST, PUT and DELETE requests. Reads pass through.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !rl.getLimiter(key).Allow() {
			metrics.RecordRateLimited(c.FullPath())
			logger.WithContext(c).WithFields(map[string]interface{}{
				"client_ip": key,
				"path":      c.Request.URL.Path,
				"method":    c.Request.Method,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
			return
		}

		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}
