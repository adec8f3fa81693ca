package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for TodoOperations.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	TodoOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todo", Name: "operations_total", Help: "Number of todo store operations by operation and result."},
		[]string{"op", "result"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todo", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todo", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(TodoOperations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

// ObserveOperation counts one store operation, labelled ok or error.
func ObserveOperation(op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	TodoOperations.WithLabelValues(op, result).Inc()
}
