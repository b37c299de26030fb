package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRecordsRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("/api/sellers/{vendorID}/orders", "GET", 200, 120*time.Millisecond)
	m.Observe("", "GET", 500, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var counter *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "http_requests_total" {
			counter = f
		}
	}
	if counter == nil {
		t.Fatal("http_requests_total not registered")
	}
	if len(counter.GetMetric()) != 2 {
		t.Fatalf("expected 2 labeled series, got %d", len(counter.GetMetric()))
	}

	for _, metric := range counter.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "route" && label.GetValue() == "" {
				t.Fatal("empty route label should be normalized")
			}
		}
	}
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("/x", "GET", 200, time.Second)

	m = NewHTTPMetrics(nil)
	m.Observe("/x", "GET", 200, time.Second)
}
