package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/checkmarble/todo-backend/api"
	"github.com/checkmarble/todo-backend/infra"
	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/usecases"
	"github.com/checkmarble/todo-backend/utils"
)

const shutdownTimeout = 5 * time.Second

func RunServer(compiledConfig CompiledConfig) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		Host:                utils.GetEnv("SERVER_HOST", "127.0.0.1"),
		Port:                utils.GetEnv("SERVER_PORT", "8080"),
		AllowedOrigins:      splitList(utils.GetEnv("CORS_ALLOW_ORIGINS", "")),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECOND", 10)) * time.Second,
		MaxBodySize:         int64(utils.GetEnv("MAX_BODY_SIZE_BYTES", 1<<20)),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
	pgConfig := pgConfigFromEnv(apiConfig.Env)
	serverConfig := ServerConfig{
		loggingFormat:      utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:          utils.GetEnv("SENTRY_DSN", ""),
		enableTracing:      utils.GetEnv("ENABLE_TRACING", false),
		tracingSampleRatio: utils.GetEnv("TRACING_SAMPLE_RATIO", infra.DEFAULT_SAMPLING_RATE),
	}
	if err := serverConfig.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(serverConfig.loggingFormat, compiledConfig.Version)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, compiledConfig.Version)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(infra.TelemetryConfiguration{
		Enabled:         serverConfig.enableTracing,
		ApplicationName: apiConfig.AppName,
		SamplingRatio:   serverConfig.tracingSampleRatio,
	}, compiledConfig.Version)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig, telemetryRessources.TracerProvider)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	if apiConfig.EnablePrometheus {
		if err := infra.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool); err != nil {
			utils.LogAndReportSentryError(ctx, err)
		}
	}

	executorFactory := repositories.NewExecutorFactory(pool, pgConfig.AcquireTimeout)
	uc := usecases.NewUsecases(executorFactory)

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(notify)
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Error while serving the app")
		}
		logger.InfoContext(ctx, "server returned")
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "Error while shutting down the server")
		}
		if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
			logger.WarnContext(ctx, "could not flush traces", "cause", err.Error())
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	return nil
}
