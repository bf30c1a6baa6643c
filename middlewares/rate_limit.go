package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/overstimulation/wellness-dashboard-team-project/internal/cache"
)

// RateLimit caps requests per client IP inside a fixed window, backed by a
// Redis counter. With no Redis client configured the limiter is a pass-through.
func RateLimit(cacheClient *cache.Client, name string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())
		count, err := cacheClient.IncrWindow(c.Request.Context(), key, window)
		if err != nil {
			// Fail open: a cache outage should not take requests down.
			log.Printf("rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}
		if count > max {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
