package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboundRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_outbound_requests_total",
			Help: "Total number of requests sent to n8n and the text-extraction service",
		},
		[]string{"service", "endpoint", "outcome"},
	)

	OutboundDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_outbound_request_duration_seconds",
			Help:    "Duration of outbound requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)

	ActionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_action_outcomes_total",
			Help: "Outcomes of goal, resume and ranking submissions",
		},
		[]string{"action", "status"},
	)

	BusyRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_busy_rejections_total",
			Help: "Submissions rejected because the same control was still in flight",
		},
		[]string{"action"},
	)
)

// Outcome labels a response by status class; 0 means no response was received.
func Outcome(status int) string {
	if status == 0 {
		return "transport_error"
	}
	return fmt.Sprintf("%dxx", status/100)
}

func ObserveOutbound(service, endpoint string, status int, elapsed time.Duration) {
	OutboundRequests.WithLabelValues(service, endpoint, Outcome(status)).Inc()
	OutboundDuration.WithLabelValues(service, endpoint).Observe(elapsed.Seconds())
}
