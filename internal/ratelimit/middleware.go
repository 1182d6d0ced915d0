package ratelimit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests over the limit with 429 before any further
// handling, so abusive clients never reach credential verification.
func Middleware(l *Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": message,
			})
			return
		}
		c.Next()
	}
}
