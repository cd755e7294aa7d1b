package metrics

import "github.com/prometheus/client_golang/prometheus"

// Classification and retrieval routing metrics.
var (
	ClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragdex",
			Name:      "classifications_total",
			Help:      "Query classifications by category",
		},
		[]string{"category"},
	)

	RoutesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragdex",
			Name:      "routes_total",
			Help:      "Retrieval strategy decisions",
		},
		[]string{"strategy"},
	)

	RetrievalDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ragdex",
			Name:      "retrieval_degraded_total",
			Help:      "Queries that fell back to direct generation after a retrieval failure",
		},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ragdex",
			Name:      "search_duration_seconds",
			Help:      "Similarity search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"backend"},
	)
)

var routingMetricsRegistered bool

// RegisterRoutingMetrics registers routing metrics. Call once from main.
func RegisterRoutingMetrics() {
	if routingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ClassificationsTotal)
	prometheus.MustRegister(RoutesTotal)
	prometheus.MustRegister(RetrievalDegradedTotal)
	prometheus.MustRegister(SearchDuration)
	routingMetricsRegistered = true
}
