// Package metrics provides Prometheus instrumentation for the matchmaker
// service: HTTP throughput and latency, match computation timing, and
// embedding cache effectiveness.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and
	// status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchmaker_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration records request handling latency in seconds.
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "matchmaker_http_request_duration_seconds",
		Help:    "HTTP request handling latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})

	// MatchDuration records the time to compute one full ranked match list.
	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchmaker_match_duration_seconds",
		Help:    "Time to compute a ranked match list",
		Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	// MatchResultsTotal counts match results returned to clients.
	MatchResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "matchmaker_match_results_total",
		Help: "Total number of match results returned",
	})

	// EmbeddingCacheOps counts embedding cache lookups by outcome:
	// "hit_memory", "hit_redis", or "miss".
	EmbeddingCacheOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchmaker_embedding_cache_ops_total",
		Help: "Embedding cache lookups by outcome",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		MatchDuration,
		MatchResultsTotal,
		EmbeddingCacheOps,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
