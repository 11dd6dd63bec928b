package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests sent to the Confluence REST API",
		},
		[]string{"resource", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Confluence REST API latency in seconds",
			Buckets:   durationBuckets,
		},
		[]string{"resource"},
	)
)

// ObserveUpstream records one Confluence call. status is 0 when no response
// was received.
func ObserveUpstream(resource string, status int, started time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequestsTotal.WithLabelValues(resource, label).Inc()
	upstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(started).Seconds())
}
