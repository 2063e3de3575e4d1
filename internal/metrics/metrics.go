// Package metrics registers the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClassificationsTotal counts completed classifications by category
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emailclassifier_classifications_total",
		Help: "Completed classifications by category.",
	}, []string{"category"})

	// ClassificationFailures counts failed classification attempts by reason
	ClassificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emailclassifier_classification_failures_total",
		Help: "Failed classification attempts by reason.",
	}, []string{"reason"})

	// ClassificationDuration observes client-side classification latency
	ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "emailclassifier_classification_duration_seconds",
		Help:    "Wall-clock time of classification requests as seen by the gateway.",
		Buckets: prometheus.DefBuckets,
	})
)
