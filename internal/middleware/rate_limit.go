package middleware

import (
	"context"
	"net/http"
	"time"

	"koovappally_front_end/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	// La recherche par image coûte un appel au service de similarité :
	// max 10 recherches par minute et par IP
	ImageSearchMaxRequests = 10
	ImageSearchCooldown    = 1 * time.Minute
)

// ImageSearchRateLimit limite les recherches par image (anti-spam).
// Sans Redis, la limite est simplement inactive.
func ImageSearchRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.Enabled() {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := "image_search:" + ip

		requests, _ := cache.RedisClient.Get(ctx, key).Int()
		if requests >= ImageSearchMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many image searches. Please try again in a minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := cache.RedisClient.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ImageSearchCooldown)
		pipe.Exec(ctx)

		c.Next()
	}
}
