package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/alumni-advisor/internal/ratelimit"
	"github.com/yoockh/alumni-advisor/internal/utils"
)

// RateLimit rejects clients over their per-IP budget with 429. Limiter errors
// let the request through.
func RateLimit(lim ratelimit.Limiter, l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		res, err := lim.Allow(c.Request.Context(), key)
		if err != nil {
			l.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"ip":         c.ClientIP(),
			}).WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			secs := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    utils.CodeRateLimited,
				"message": "too many requests",
			})
			return
		}
		c.Next()
	}
}
