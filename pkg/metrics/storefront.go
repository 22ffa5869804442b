package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// StorefrontMetrics records cart, checkout, description and session activity.
type StorefrontMetrics struct {
	cartMutations *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
	orderValue    prometheus.Histogram
	describe      *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a recorder whose methods are no-ops.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Orders created by checkout.",
	})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_order_value",
		Help:    "Order totals at checkout.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	describe := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_describe_requests_total",
		Help: "Product description requests, by outcome.",
	}, []string{"outcome"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_active_sessions",
		Help: "Sessions currently holding a store.",
	})
	reg.MustRegister(cartMutations, ordersPlaced, orderValue, describe, sessions)
	return &StorefrontMetrics{
		cartMutations: cartMutations,
		ordersPlaced:  ordersPlaced,
		orderValue:    orderValue,
		describe:      describe,
		sessions:      sessions,
	}
}

// CartMutation counts one applied cart operation.
func (m *StorefrontMetrics) CartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// OrderPlaced counts a checkout and observes its total.
func (m *StorefrontMetrics) OrderPlaced(total decimal.Decimal) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderValue.Observe(total.InexactFloat64())
}

// DescribeOutcome counts a description request by outcome (generated, cached, fallback).
func (m *StorefrontMetrics) DescribeOutcome(outcome string) {
	if m == nil || m.describe == nil {
		return
	}
	m.describe.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// SetActiveSessions publishes the current session count.
func (m *StorefrontMetrics) SetActiveSessions(n int) {
	if m == nil || m.sessions == nil {
		return
	}
	m.sessions.Set(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
