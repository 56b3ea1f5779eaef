package objstore

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements the Metrics interface using Prometheus
type PrometheusMetrics struct {
	operations   *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	gauges       *prometheus.GaugeVec
	observations *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a new Prometheus metrics instance
// If registry is nil, uses the default Prometheus registerer
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	return &PrometheusMetrics{
		operations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "utilkit",
				Subsystem: "objstore",
				Name:      "operations_total",
				Help:      "Total number of store operations by result",
			},
			[]string{"operation", "result"},
		),
		durations: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "utilkit",
				Subsystem: "objstore",
				Name:      "operation_duration_seconds",
				Help:      "Store operation latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		gauges: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "utilkit",
				Subsystem: "objstore",
				Name:      "gauge",
				Help:      "Arbitrary gauges reported by the store",
			},
			[]string{"name"},
		),
		observations: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "utilkit",
				Subsystem: "objstore",
				Name:      "observations",
				Help:      "Arbitrary value distributions reported by the store",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"name"},
		),
	}
}

// Increment increases an operation counter by 1
func (p *PrometheusMetrics) Increment(name string, tags ...string) {
	operation, result := splitMetricName(name)
	p.operations.WithLabelValues(operation, result).Inc()
}

// Gauge sets an absolute value
func (p *PrometheusMetrics) Gauge(name string, value float64, tags ...string) {
	p.gauges.WithLabelValues(name).Set(value)
}

// Histogram records a value distribution
func (p *PrometheusMetrics) Histogram(name string, value float64, tags ...string) {
	p.observations.WithLabelValues(name).Observe(value)
}

// Timing records an operation duration
func (p *PrometheusMetrics) Timing(name string, duration time.Duration, tags ...string) {
	operation, _ := splitMetricName(name)
	p.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// splitMetricName turns "objstore.read.success" into ("read", "success").
// Names that don't follow the component.operation.result convention are
// reported under the full name with an empty result label.
func splitMetricName(name string) (operation, result string) {
	parts := strings.Split(name, ".")
	if len(parts) >= 3 {
		return parts[1], parts[2]
	}
	return name, ""
}
