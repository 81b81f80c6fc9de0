package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parts_store_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parts_store_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parts_store_orders_created_total",
		Help: "Total number of orders created at checkout",
	})

	OrdersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parts_store_orders_deleted_total",
		Help: "Total number of orders removed by bulk deletion",
	})

	ImportJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parts_store_import_jobs_total",
		Help: "Total number of import/export jobs by terminal status",
	}, []string{"type", "status"})

	ImportRowsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parts_store_import_rows_processed_total",
		Help: "Total number of import rows processed",
	})
)
