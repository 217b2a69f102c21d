package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var decisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "pharmasave",
		Subsystem: "wallet",
		Name:      "decisions_total",
		Help:      "Request decisions processed by the approval engine, by request type and outcome.",
	},
	[]string{"request_type", "outcome"},
)

var requestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "pharmasave",
		Subsystem: "wallet",
		Name:      "requests_created_total",
		Help:      "Fund and withdrawal requests created, by request type.",
	},
	[]string{"request_type"},
)

// ObserveDecision records one approval-engine outcome. Outcome is either a
// terminal request status or an error label.
func ObserveDecision(requestType, outcome string) {
	decisionsTotal.WithLabelValues(requestType, outcome).Inc()
}

// ObserveRequestCreated records one created request.
func ObserveRequestCreated(requestType string) {
	requestsCreatedTotal.WithLabelValues(requestType).Inc()
}
