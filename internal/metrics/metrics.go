// Package metrics defines Prometheus metrics for the registry service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registro_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registro_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registro_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	MutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registro_person_mutations_total",
			Help: "Total person mutations by operation",
		},
		[]string{"operation"},
	)

	CSVRowsImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registro_csv_rows_imported_total",
			Help: "Total person rows created through CSV import",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registro_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		MutationsTotal, CSVRowsImported,
		WSConnections,
	)
}
