package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricHttpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_http_requests_total",
			Help: "Number of HTTP requests handled, by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	MetricHttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todo_http_request_duration_seconds",
			Help:    "Latency of HTTP requests, by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MetricConnectionAcquireFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todo_db_acquire_failures_total",
			Help: "Number of times a connection could not be acquired from the pool",
		},
	)

	MetricTodoItemsChecked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_items_check_total",
			Help: "Number of check requests on todo items, by outcome",
		},
		[]string{"changed"},
	)
)
