package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAPIClientMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAPIClientMetrics(reg)

	m.IncRequest("GET", "/laundry/orders", "200")
	m.IncRequest("GET", "/laundry/orders", "200")
	m.IncFailure("POST", "/laundry/orders")
	m.ObserveDuration("GET", "/laundry/orders", 120*time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/laundry/orders", "200")); got != 2 {
		t.Fatalf("expected 2 requests recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("POST", "/laundry/orders")); got != 1 {
		t.Fatalf("expected 1 failure recorded, got %v", got)
	}
}

func TestAPIClientMetricsNilSafe(t *testing.T) {
	var m *APIClientMetrics
	m.IncRequest("GET", "/laundry/orders", "200")
	m.IncFailure("GET", "/laundry/orders")
	m.ObserveDuration("GET", "", time.Second)

	empty := NewAPIClientMetrics(nil)
	empty.IncRequest("", "", "")
}
