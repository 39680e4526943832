package middleware

import (
	"net/http"

	"tagmytrophy/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit denies requests beyond the limiter's window budget, keyed by
// client IP. Limits are per-process; see the limiter doc for the
// multi-instance caveat.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
