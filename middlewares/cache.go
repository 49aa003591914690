package middlewares

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

const cachePrefix = "floorplan:cache"

// captureWriter copies the response body while forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// cacheKey hashes the concrete request path, so /tables/t1 and /tables/t2
// never share an entry.
func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("%s:%x", cachePrefix, sum[:])
}

// ResponseCache serves repeated GET requests for JSON read models from Redis.
// With a nil client it is a no-op.
func ResponseCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil || ttl <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(c)
		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() == http.StatusOK && cw.buf.Len() > 0 {
			if err := rdb.Set(context.Background(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
				utils.ErrorLogger.Printf("cache: store %s failed: %v", c.Request.URL.Path, err)
			}
		}
	}
}

// InvalidateCache drops every cached read model after a successful write so
// floor screens never see a table state older than the last change.
func InvalidateCache(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ctx := context.Background()
		iter := rdb.Scan(ctx, 0, cachePrefix+":*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			utils.ErrorLogger.Printf("cache: scan failed: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				utils.ErrorLogger.Printf("cache: invalidate failed: %v", err)
			}
		}
	}
}
