package services

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics records counters and processing times via Prometheus
type PrometheusMetrics struct {
	mu         sync.Mutex
	registerer prometheus.Registerer
	counters   map[string]*prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a metrics recorder registering on the given registerer
func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "operation_duration_seconds",
		Help:    "Duration of named operations in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	registerer.MustRegister(durations)

	return &PrometheusMetrics{
		registerer: registerer,
		counters:   make(map[string]*prometheus.CounterVec),
		durations:  durations,
	}
}

// IncrementCounter increments the named counter with the given label set.
// Counters are registered on first use; every later call for the same name
// must use the same label keys
func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m.mu.Lock()
	counter, ok := m.counters[name]
	if !ok {
		counter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: "Total number of " + name + " events",
		}, keys)
		m.registerer.MustRegister(counter)
		m.counters[name] = counter
	}
	m.mu.Unlock()

	counter.With(prometheus.Labels(tags)).Inc()
}

// RecordProcessingTime observes the duration of a named operation
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.durations.WithLabelValues(name).Observe(duration.Seconds())
}

// NoopMetrics is a MetricsRecorderInterface that discards everything.
// Used in tests and when metrics are disabled
type NoopMetrics struct{}

// IncrementCounter does nothing
func (NoopMetrics) IncrementCounter(string, map[string]string) {}

// RecordProcessingTime does nothing
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
