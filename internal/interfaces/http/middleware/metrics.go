package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/infrastructure/metrics"
)

// Metrics records every request under its route pattern, so /tickets/7 and
// /tickets/8 share one series. Unmatched paths are grouped as "unmatched".
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
