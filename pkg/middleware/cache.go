package middleware

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cachedWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("yatra:cache:%x", sum[:])
}

// CacheMiddleware serves successful GET responses from Redis for the given
// TTL. Inventory tables are seeded externally and read-only, so a short cache
// window never serves stale bookable data. With a nil client (Redis
// unreachable at startup) caching is disabled and requests pass through.
func CacheMiddleware(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if body, err := client.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK && len(writer.body) > 0 {
			client.Set(c.Request.Context(), key, writer.body, ttl)
		}
	}
}
