// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BillsCreated counts successfully persisted bills.
	BillsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventoryhub_bills_created_total",
		Help: "Number of bills successfully created.",
	})

	// BillFailures counts failed bill creations by reason.
	BillFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventoryhub_bill_failures_total",
		Help: "Number of failed bill creations, partitioned by reason.",
	}, []string{"reason"})

	// RequestDuration observes HTTP request latency per method and path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventoryhub_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
