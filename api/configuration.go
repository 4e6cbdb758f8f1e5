package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Host                string
	Port                string
	AllowedOrigins      []string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	MaxBodySize         int64
	EnablePrometheus    bool
}
