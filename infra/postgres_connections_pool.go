package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/checkmarble/todo-backend/utils"
)

const connectRetryDelay = 500 * time.Millisecond

func NewPostgresConnectionPool(
	ctx context.Context,
	config PgConfig,
	tp trace.TracerProvider,
) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(config.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if tp != nil {
		cfg.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithTracerProvider(tp))
	}
	if config.MaxPoolConnections > 0 {
		cfg.MaxConns = int32(config.MaxPoolConnections)
	} else {
		cfg.MaxConns = DEFAULT_MAX_CONNECTIONS
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := waitForDatabase(ctx, pool, config.ConnectRetries); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// waitForDatabase pings the database until it answers, so that the server can be
// started alongside a database that is still booting.
func waitForDatabase(ctx context.Context, pool *pgxpool.Pool, attempts int) error {
	logger := utils.LoggerFromContext(ctx)
	if attempts <= 0 {
		attempts = DEFAULT_CONNECT_RETRIES
	}

	err := retry.Do(
		func() error {
			return pool.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(connectRetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableConnectionError),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, "database is not reachable yet",
				"attempt", n+1, "cause", err.Error())
		}),
	)
	if err != nil {
		return errors.Wrap(err, "database is not reachable")
	}
	return nil
}

// isRetryableConnectionError tells transient failures (network, database starting up)
// apart from configuration errors such as a wrong password, which are not worth retrying.
func isRetryableConnectionError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return true
	}
	return pgerrcode.IsConnectionException(pgErr.Code) ||
		pgErr.Code == pgerrcode.CannotConnectNow ||
		pgErr.Code == pgerrcode.TooManyConnections
}

// RegisterPoolMetrics exposes the pool statistics as prometheus gauges.
func RegisterPoolMetrics(registerer prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := map[string]func(s *pgxpool.Stat) float64{
		"todo_db_pool_total_connections":    func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) },
		"todo_db_pool_acquired_connections": func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) },
		"todo_db_pool_idle_connections":     func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) },
		"todo_db_pool_max_connections":      func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) },
	}
	for name, read := range gauges {
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: name,
			Help: "pgx connection pool statistic " + name,
		}, func() float64 { return read(pool.Stat()) })
		if err := registerer.Register(gauge); err != nil {
			return errors.Wrapf(err, "could not register %s", name)
		}
	}
	return nil
}
