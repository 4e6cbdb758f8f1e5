package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/checkmarble/todo-backend/api/middleware"
	"github.com/checkmarble/todo-backend/infra"
	"github.com/checkmarble/todo-backend/utils"
)

const defaultMaxBodySize = 1 << 20

func corsOption(conf Configuration) cors.Config {
	allowedOrigins := append([]string{}, conf.AllowedOrigins...)
	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	config := cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodPut,
		},
		AllowHeaders:     []string{"Content-Type", "baggage", "sentry-trace", middleware.RequestIdHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		config.AllowOrigins = nil
		config.AllowAllOrigins = true
	}
	return config
}

func InitRouterMiddlewares(
	ctx context.Context,
	conf Configuration,
	telemetryRessources infra.TelemetryRessources,
) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	maxBodySize := conf.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsOption(conf)))
	r.Use(limits.RequestSizeLimiter(maxBodySize))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.RequestId())
	r.Use(middleware.NewLogging(logger,
		middleware.WithIgnorePath([]string{"/", "/metrics"}),
		middleware.WithLevel(conf.RequestLoggingLevel)))
	r.Use(otelgin.Middleware(
		conf.AppName,
		otelgin.WithTracerProvider(telemetryRessources.TracerProvider),
		otelgin.WithPropagators(telemetryRessources.TextMapPropagator),
	))
	r.Use(utils.StoreOpenTelemetryTracerInContextMiddleware(telemetryRessources.Tracer))
	if conf.EnablePrometheus {
		r.Use(middleware.Metrics())
	}

	return r
}
