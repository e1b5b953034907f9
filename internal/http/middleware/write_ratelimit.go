package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteRateLimit limits store writes per owner (not per IP) using Redis.
// Requires the JWT middleware to have run first.
func WriteRateLimit(maxWrites int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			// Redis not configured, fail-open
			c.Next()
			return
		}

		ownerIDVal, exists := c.Get("owner_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ownerID, ok := ownerIDVal.(int64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid owner"})
			return
		}

		key := "write_rl:" + strconv.FormatInt(ownerID, 10) + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// On Redis error, fail-open but flag it
			c.Header("X-WriteRateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		c.Header("X-WriteRateLimit-Limit", strconv.Itoa(maxWrites))
		if remaining := int64(maxWrites) - val; remaining > 0 {
			c.Header("X-WriteRateLimit-Remaining", strconv.FormatInt(remaining, 10))
		} else {
			c.Header("X-WriteRateLimit-Remaining", "0")
		}

		if val > int64(maxWrites) {
			RLBlocked.WithLabelValues("write:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "write rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("write:" + c.FullPath()).Inc()
		c.Next()
	}
}
