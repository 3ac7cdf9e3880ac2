package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	commentRateMax    = 6
	commentRateWindow = time.Minute
)

// CommentRateLimit limits anonymous comment submissions per IP. With no
// Redis client configured it is a no-op, and logged-in users are exempt.
func CommentRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("blog:comment_rate:%s:%d", ip, time.Now().Unix()/int64(commentRateWindow.Seconds()))

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, commentRateWindow+time.Second)
		}

		if count > commentRateMax {
			c.Header("Retry-After", "60")
			c.String(http.StatusTooManyRequests, "Slow down, you are commenting too fast.")
			c.Abort()
			return
		}

		c.Next()
	}
}
