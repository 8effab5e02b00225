package ratelimit

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type KeyFunc func(c *gin.Context) string

// ClientIPKey keys requests by keyHeader when set and present, then by gin's
// ClientIP (which honours X-Forwarded-For only from trusted proxies).
func ClientIPKey(keyHeader string) KeyFunc {
	return func(c *gin.Context) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(c.GetHeader(keyHeader)); v != "" {
				return v
			}
		}
		if ip := c.ClientIP(); ip != "" {
			return ip
		}
		return UnknownKey
	}
}

// Middleware rejects requests over the limit with 429 before the handler
// runs.
func Middleware(l *Limiter, keyFn KeyFunc) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = ClientIPKey("")
	}
	return func(c *gin.Context) {
		dec := l.Check(c.Request.Context(), keyFn(c))
		if !dec.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
