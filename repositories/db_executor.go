package repositories

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/checkmarble/todo-backend/models"
	"github.com/checkmarble/todo-backend/utils"
)

// Executor is satisfied by a pooled connection, a transaction or a pgxmock pool.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ExecutorFactory struct {
	connectionPool *pgxpool.Pool
	acquireTimeout time.Duration
}

func NewExecutorFactory(pool *pgxpool.Pool, acquireTimeout time.Duration) ExecutorFactory {
	return ExecutorFactory{
		connectionPool: pool,
		acquireTimeout: acquireTimeout,
	}
}

// WithExecutor borrows a connection from the pool for the duration of fn. The
// connection goes back to the pool whatever fn returns, panics included.
func (f ExecutorFactory) WithExecutor(ctx context.Context, fn func(exec Executor) error) error {
	conn, err := f.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(conn)
}

func (f ExecutorFactory) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx := ctx
	if f.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, f.acquireTimeout)
		defer cancel()
	}

	conn, err := f.connectionPool.Acquire(acquireCtx)
	if err != nil {
		utils.MetricConnectionAcquireFailures.Inc()
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "Error acquiring a database connection",
			"cause", err.Error())
		return nil, models.DataAccessFailure(errors.Wrap(err, "pool.Acquire error"), "")
	}
	return conn, nil
}
