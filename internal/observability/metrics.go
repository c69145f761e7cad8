package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// Outbound API call rate per endpoint. Watch for: error vs success ratio.
	UpstreamRequestsTotal *prometheus.CounterVec

	// Completed fetch batches. A batch is fail-fast: one bad city fails the run.
	FetchRunsTotal *prometheus.CounterVec

	// Whole-batch latency. Sequential fetch, so this grows with the city list.
	FetchRunDuration prometheus.Histogram
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstreamRequestsTotal",
			Help: "Total number of outbound weather/geocoding API requests",
		},
		[]string{"endpoint", "status"},
	)
	FetchRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetchRunsTotal",
			Help: "Total number of city-batch fetch runs",
		},
		[]string{"status"},
	)
	FetchRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fetchRunDurationSeconds",
			Help:    "Latency of a full city-batch fetch run",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	registry.MustRegister(
		UpstreamRequestsTotal,
		FetchRunsTotal,
		FetchRunDuration,
	)
}

// MetricsHandler returns an http.Handler that serves application and runtime metrics.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
