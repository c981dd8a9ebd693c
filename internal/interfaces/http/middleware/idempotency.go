package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// IdempotencyMiddleware replays the first successful response for a repeated Idempotency-Key.
// Keys are scoped per caller, so it must run after AuthMiddleware.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == processingMarker {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"success": false,
					"code":    "IDEMPOTENCY_CONFLICT",
					"message": "Request already in progress",
				})
				return
			}

			var cached cachedResponse
			if err := json.Unmarshal([]byte(val), &cached); err != nil {
				logger.Warn(ctx, "Dropping unreadable idempotency entry", zap.String("key", storageKey), zap.Error(err))
				_ = redisDel(ctx, storageKey)
				c.Next()
				return
			}
			c.Header("X-Idempotency-Hit", "true")
			c.Data(cached.Status, "application/json; charset=utf-8", []byte(cached.Body))
			c.Abort()
			return
		} else if !errors.Is(err, redis.ErrNil) {
			// Redis unavailable: serve the request without replay protection
			logger.Warn(ctx, "Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"code":    "IDEMPOTENCY_CONFLICT",
				"message": "Request already in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			payload, _ := json.Marshal(cachedResponse{Status: status, Body: w.body.String()})
			if err := redisSet(ctx, storageKey, string(payload), RetentionDuration); err != nil {
				logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
			}
			return
		}
		// failed attempts may be retried with the same key
		_ = redisDel(ctx, storageKey)
	}
}
