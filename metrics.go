package glean

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glean_client",
			Name:      "requests_total",
			Help:      "Vendor API calls issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glean_client",
			Name:      "request_failures_total",
			Help:      "Vendor API calls that returned a classified error.",
		},
		[]string{"endpoint", "kind"},
	)
)

func recordCall(endpoint string) {
	requestsTotal.WithLabelValues(endpoint).Inc()
}

func recordFailure(endpoint string, kind Kind) {
	requestFailuresTotal.WithLabelValues(endpoint, kind.String()).Inc()
}
