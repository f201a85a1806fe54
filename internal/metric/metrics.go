// Package metric defines the Prometheus instruments the service reports.
package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CartOperationsTotal counts cart mutations by operation
	CartOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yumtum",
		Subsystem: "cart",
		Name:      "operations_total",
		Help:      "Cart mutations by operation",
	}, []string{"operation"}) // add, remove, update_quantity, clear, discount

	// CheckoutOutcomesTotal counts checkout gate outcomes
	CheckoutOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yumtum",
		Subsystem: "checkout",
		Name:      "outcomes_total",
		Help:      "Checkout gate outcomes",
	}, []string{"outcome"}) // approved, awaiting_verification, rejected, cancelled, empty_cart

	// OrdersPlacedTotal counts successfully assembled orders
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "yumtum",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Orders successfully assembled",
	})

	// SessionsActive tracks the number of live sessions
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yumtum",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Live sessions held in memory",
	})

	// RequestMetrics summarizes request latency by status code
	RequestMetrics = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  "yumtum",
		Subsystem:  "http",
		Name:       "request",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})
)

// ObserveRequest records one request's duration under its status code
func ObserveRequest(t time.Duration, status int) {
	RequestMetrics.WithLabelValues(strconv.Itoa(status)).Observe(t.Seconds())
}
