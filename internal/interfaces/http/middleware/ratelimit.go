package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/infrastructure/ratelimit"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// RateLimit throttles a route per client IP. Limiter failures let the
// request through so an unavailable Redis never locks everyone out.
func RateLimit(limiter ratelimit.RateLimiter, scope string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("too many attempts, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
