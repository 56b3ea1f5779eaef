package objstore

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	if metrics == nil {
		t.Fatal("expected PrometheusMetrics, got nil")
	}
}

func TestPrometheusMetricsIncrement(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.Increment(MetricReadSuccess)
	metrics.Increment(MetricReadSuccess)
	metrics.Increment(MetricWriteError)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metricFamilies {
		if strings.Contains(mf.GetName(), "operations_total") {
			found = true
			for _, m := range mf.GetMetric() {
				labels := map[string]string{}
				for _, l := range m.GetLabel() {
					labels[l.GetName()] = l.GetValue()
				}
				if labels["operation"] == "read" && labels["result"] == "success" {
					if m.GetCounter().GetValue() != 2 {
						t.Errorf("read success counter = %f, want 2", m.GetCounter().GetValue())
					}
				}
			}
		}
	}
	if !found {
		t.Error("expected operations_total metric to be registered")
	}
}

func TestPrometheusMetricsTiming(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.Timing(MetricReadDuration, 5*time.Millisecond)
	metrics.Timing(MetricWriteDuration, 10*time.Millisecond)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metricFamilies {
		if strings.Contains(mf.GetName(), "operation_duration_seconds") {
			found = true
		}
	}
	if !found {
		t.Error("expected operation_duration_seconds metric to be registered")
	}
}

func TestPrometheusMetricsGaugeAndHistogram(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	metrics.Gauge("store_size", 42)
	metrics.Histogram(MetricKeysListed, 7)

	if _, err := registry.Gather(); err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
}

func TestSplitMetricName(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		result    string
	}{
		{"objstore.read.success", "read", "success"},
		{"objstore.write.duration", "write", "duration"},
		{"oddball", "oddball", ""},
	}

	for _, tt := range tests {
		operation, result := splitMetricName(tt.name)
		if operation != tt.operation || result != tt.result {
			t.Errorf("splitMetricName(%q) = (%q, %q), want (%q, %q)",
				tt.name, operation, result, tt.operation, tt.result)
		}
	}
}
