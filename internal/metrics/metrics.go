package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog API metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog API requests by endpoint and outcome.",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Latency of catalog API requests, retries included.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CatalogRetriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_retries_total",
			Help: "Total number of retried catalog API attempts.",
		},
		[]string{"endpoint"},
	)
)

// Page metrics
var (
	PageRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Total number of rendered views by view and outcome (ok, empty, error).",
		},
		[]string{"view", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		CatalogRetriesTotal,
		PageRendersTotal,
	)
}
