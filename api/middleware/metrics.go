package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/todo-backend/utils"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency, labelled by route template so
// that path ids do not blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		utils.MetricHttpRequests.
			WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
		utils.MetricHttpRequestDuration.
			WithLabelValues(method, route).
			Observe(time.Since(start).Seconds())
	}
}
