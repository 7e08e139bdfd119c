// Package metrics exposes Prometheus metrics for routing decisions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoutingDecisions counts routing decisions by target agent and the
	// priority tier that produced them.
	RoutingDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_router_routing_decisions_total",
			Help: "The total number of routing decisions by target agent and tier",
		},
		[]string{"target", "tier"},
	)

	// CrisisDetections counts messages that triggered crisis handling.
	CrisisDetections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "support_router_crisis_detections_total",
			Help: "The total number of messages routed to crisis handling",
		},
	)

	// DistressLevels counts scored messages by distress level.
	DistressLevels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_router_distress_levels_total",
			Help: "The total number of scored messages by distress level",
		},
		[]string{"level"},
	)

	// DecisionEvaluationLatency tracks end-to-end routing evaluation time.
	DecisionEvaluationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "support_router_decision_evaluation_duration_seconds",
			Help:    "The duration of routing decision evaluation in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

// RecordRoutingDecision records a completed routing decision.
func RecordRoutingDecision(target, tier string) {
	RoutingDecisions.WithLabelValues(target, tier).Inc()
}

// RecordCrisisDetection records a crisis detection.
func RecordCrisisDetection() {
	CrisisDetections.Inc()
}

// RecordDistressLevel records the distress level attached to a decision.
func RecordDistressLevel(level string) {
	DistressLevels.WithLabelValues(level).Inc()
}

// RecordDecisionEvaluation records the latency of one routing evaluation.
func RecordDecisionEvaluation(seconds float64) {
	DecisionEvaluationLatency.Observe(seconds)
}
