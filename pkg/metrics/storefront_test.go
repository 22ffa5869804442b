package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
)

func TestStorefrontMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.CartMutation("add")
	m.CartMutation("add")
	m.CartMutation("")
	m.OrderPlaced(decimal.RequireFromString("25.50"))
	m.DescribeOutcome("fallback")
	m.SetActiveSessions(3)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "storefront_cart_mutations_total", "op", "add"); err != nil {
		t.Fatalf("fetch cart mutations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected add=2, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "storefront_cart_mutations_total", "op", "unknown"); err != nil {
		t.Fatalf("fetch unknown op: %v", err)
	} else if got != 1 {
		t.Fatalf("expected unknown=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "storefront_describe_requests_total", "outcome", "fallback"); err != nil {
		t.Fatalf("fetch describe: %v", err)
	} else if got != 1 {
		t.Fatalf("expected fallback=1, got %f", got)
	}

	orders := findMetricFamily(mfs, "storefront_orders_placed_total")
	if orders == nil || orders.GetMetric()[0].GetCounter().GetValue() != 1 {
		t.Fatalf("expected one placed order")
	}
	value := findMetricFamily(mfs, "storefront_order_value")
	if value == nil || value.GetMetric()[0].GetHistogram().GetSampleSum() != 25.5 {
		t.Fatalf("expected order value sum 25.5")
	}
	sessions := findMetricFamily(mfs, "storefront_active_sessions")
	if sessions == nil || sessions.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Fatalf("expected 3 active sessions")
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewStorefrontMetrics(nil)
	m.CartMutation("add")
	m.OrderPlaced(decimal.NewFromInt(1))
	m.DescribeOutcome("generated")
	m.SetActiveSessions(1)

	var nilMetrics *StorefrontMetrics
	nilMetrics.CartMutation("add")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
