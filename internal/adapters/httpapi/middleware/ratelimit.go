package middleware

import (
	"net/http"

	"devconnect/internal/config"
	ratelimitPort "devconnect/internal/ports/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit guards the API with a per-client counter. Runs before token
// verification, so callers are keyed by client IP. Limiter outages fail
// open: availability wins over strictness.
func RateLimit(limiter ratelimitPort.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			config.Logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
