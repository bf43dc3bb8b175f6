package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "path", "status"},
	)

	// Size of project lists returned by filter queries.
	FilterResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_filter_results",
			Help:    "Number of projects matched by a filter query",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_exports_total",
			Help: "Total number of generated export files",
		},
		[]string{"kind"}, // kind: dashboard_xlsx, projects_xlsx, project_pdf, map_pdf
	)

	AdminMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_admin_mutations_total",
			Help: "Total number of admin create/update operations",
		},
		[]string{"entity", "action"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func ObserveFilterResults(n int) {
	FilterResults.Observe(float64(n))
}

func IncrementExport(kind string) {
	ExportsTotal.WithLabelValues(kind).Inc()
}

func IncrementAdminMutation(entity, action string) {
	AdminMutationsTotal.WithLabelValues(entity, action).Inc()
}
