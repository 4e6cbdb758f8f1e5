package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
		c.Next()
	}
}

// EnrichContextLogger adds attributes to the logger stored in the request
// context, so that everything logged further down the call chain carries them.
func EnrichContextLogger(c *gin.Context, args ...any) *slog.Logger {
	logger := LoggerFromContext(c.Request.Context()).With(args...)
	c.Request = c.Request.WithContext(StoreLoggerInContext(c.Request.Context(), logger))
	return logger
}
