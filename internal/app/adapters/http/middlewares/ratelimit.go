package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// RateLimit lets through requests per window with a burst of the same size.
// Zero requests or window disables the limiter.
func (m *Middlewares) RateLimit(requests int, per time.Duration) gin.HandlerFunc {
	if requests <= 0 || per <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(limitFor(requests, per), requests)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.log.Debug("Rate limited", "path", c.FullPath(), "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// limitFor converts requests per window into events per second without the
// integer division that rounds sub-nanosecond intervals down to rate.Inf.
func limitFor(requests int, per time.Duration) rate.Limit {
	return rate.Limit(float64(requests) / per.Seconds())
}
