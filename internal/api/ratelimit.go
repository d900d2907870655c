package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a single process-wide limiter. Dashboard
// interaction is bursty (a slider drag fires several /api/routes calls in
// quick succession), so the bucket holds two seconds of requests. The
// dataset is small and every response is cheap, so per-client buckets are
// not worth the bookkeeping.
func RateLimitMiddleware(rps int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), 2*rps)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
