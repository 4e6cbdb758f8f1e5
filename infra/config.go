package infra

import (
	"fmt"
	"time"
)

const (
	DEFAULT_MAX_CONNECTIONS = 10
	DEFAULT_ACQUIRE_TIMEOUT = 3 * time.Second
	DEFAULT_CONNECT_RETRIES = 10
)

type PgConfig struct {
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	SslMode            string
	MaxPoolConnections int
	AcquireTimeout     time.Duration
	ConnectRetries     int
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

type TelemetryConfiguration struct {
	Enabled         bool
	ApplicationName string
	SamplingRatio   float64
}
