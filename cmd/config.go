package cmd

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/checkmarble/todo-backend/infra"
	"github.com/checkmarble/todo-backend/utils"
)

const appName = "todo-backend"

type CompiledConfig struct {
	Version string
}

type ServerConfig struct {
	loggingFormat      string
	sentryDsn          string
	enableTracing      bool
	tracingSampleRatio float64
}

func (config ServerConfig) Validate() error {
	if config.tracingSampleRatio < 0 || config.tracingSampleRatio > 1 {
		return errors.New("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}
	return nil
}

// loadConfigFile overlays the optional CONFIG_FILE on top of the defaults. It must
// run before any other configuration value is read.
func loadConfigFile() error {
	return utils.LoadConfigFile(utils.GetEnv("CONFIG_FILE", ""))
}

// pgConfigFromEnv reads the database settings. Outside of development, the
// hostname and credentials have no default and must be set unless a full
// connection string is given.
func pgConfigFromEnv(env string) infra.PgConfig {
	config := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "todos"),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		AcquireTimeout: time.Duration(utils.GetEnv("PG_ACQUIRE_TIMEOUT_MS",
			int(infra.DEFAULT_ACQUIRE_TIMEOUT.Milliseconds()))) * time.Millisecond,
		ConnectRetries: utils.GetEnv("PG_CONNECT_RETRIES", infra.DEFAULT_CONNECT_RETRIES),
	}

	if env == "development" || config.ConnectionString != "" {
		config.Hostname = utils.GetEnv("PG_HOSTNAME", "localhost")
		config.User = utils.GetEnv("PG_USER", "postgres")
		config.Password = utils.GetEnv("PG_PASSWORD", "")
		return config
	}
	config.Hostname = utils.GetRequiredEnv[string]("PG_HOSTNAME")
	config.User = utils.GetRequiredEnv[string]("PG_USER")
	config.Password = utils.GetRequiredEnv[string]("PG_PASSWORD")
	return config
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	items := make([]string, 0)
	for item := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
