package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/checkmarble/todo-backend/utils"
)

const RequestIdHeader = "X-Request-Id"

const maxRequestIdLength = 128

// RequestId reuses the caller's request id when present, or generates one. The
// id is echoed in the response and attached to the request logger.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" || len(requestId) > maxRequestIdLength {
			requestId = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyRequestId, requestId)
		c.Request = c.Request.WithContext(ctx)
		utils.EnrichContextLogger(c, "request_id", requestId)

		c.Header(RequestIdHeader, requestId)
		c.Next()
	}
}
