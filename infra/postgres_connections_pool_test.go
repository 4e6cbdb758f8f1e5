package infra

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableConnectionError(t *testing.T) {
	assert.True(t, isRetryableConnectionError(context.DeadlineExceeded), "network level errors are retried")
	assert.True(t, isRetryableConnectionError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow}))
	assert.True(t, isRetryableConnectionError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.True(t, isRetryableConnectionError(&pgconn.PgError{Code: pgerrcode.TooManyConnections}))
	assert.False(t, isRetryableConnectionError(&pgconn.PgError{Code: pgerrcode.InvalidPassword}))
	assert.False(t, isRetryableConnectionError(&pgconn.PgError{Code: pgerrcode.InvalidCatalogName}))
}

func TestPgConfig_GetConnectionString(t *testing.T) {
	t.Run("explicit connection string wins", func(t *testing.T) {
		config := PgConfig{ConnectionString: "postgres://u:p@db/todos", Hostname: "ignored"}
		assert.Equal(t, "postgres://u:p@db/todos", config.GetConnectionString())
	})

	t.Run("built from parts", func(t *testing.T) {
		config := PgConfig{
			Hostname: "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "secret",
			Database: "todos",
		}
		assert.Equal(t,
			"host=localhost port=5432 user=postgres password=secret database=todos sslmode=prefer",
			config.GetConnectionString())
	})
}
