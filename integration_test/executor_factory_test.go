package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmarble/todo-backend/api"
	"github.com/checkmarble/todo-backend/infra"
	"github.com/checkmarble/todo-backend/repositories"
	"github.com/checkmarble/todo-backend/usecases"
	"github.com/checkmarble/todo-backend/utils"
)

func newSingleConnectionFactory(t *testing.T, ctx context.Context) (*pgxpool.Pool, repositories.ExecutorFactory) {
	t.Helper()
	pgConfig := infra.PgConfig{
		ConnectionString:   testConnectionString,
		MaxPoolConnections: 1,
		AcquireTimeout:     300 * time.Millisecond,
		ConnectRetries:     1,
	}
	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig, nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, repositories.NewExecutorFactory(pool, pgConfig.AcquireTimeout)
}

func TestExhaustedPoolAnswersUnexpectedError(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text", "test"))
	_, factory := newSingleConnectionFactory(t, ctx)

	apiConfig := api.Configuration{
		Env:                 "development",
		AppName:             "todo-backend",
		RequestLoggingLevel: "errors",
		DefaultTimeout:      5 * time.Second,
	}
	router := api.InitRouterMiddlewares(ctx, apiConfig, infra.NoopTelemetry())
	server := httptest.NewServer(api.NewServer(router, apiConfig, usecases.NewUsecases(factory)).Handler)
	defer server.Close()
	e := httpexpect.Default(t, server.URL)

	acquired := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- factory.WithExecutor(ctx, func(exec repositories.Executor) error {
			close(acquired)
			<-release
			return nil
		})
	}()
	<-acquired

	e.GET("/todos").Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().IsEqual(map[string]any{"error": "An unexpected error has occurred"})

	close(release)
	require.NoError(t, <-done)

	e.GET("/todos").Expect().Status(http.StatusOK).JSON().Array()
}

func TestWithExecutorReleasesConnection(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text", "test"))
	pool, factory := newSingleConnectionFactory(t, ctx)

	t.Run("fn returns an error", func(t *testing.T) {
		err := factory.WithExecutor(ctx, func(exec repositories.Executor) error {
			_, err := exec.Exec(ctx, "SELECT 1")
			require.NoError(t, err)
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	})

	t.Run("fn panics", func(t *testing.T) {
		func() {
			defer func() {
				assert.Equal(t, "boom", recover())
			}()
			_ = factory.WithExecutor(ctx, func(exec repositories.Executor) error {
				panic("boom")
			})
		}()

		assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	})

	t.Run("connection is reusable afterwards", func(t *testing.T) {
		err := factory.WithExecutor(ctx, func(exec repositories.Executor) error {
			var one int
			return exec.QueryRow(ctx, "SELECT 1").Scan(&one)
		})

		assert.NoError(t, err)
	})
}
