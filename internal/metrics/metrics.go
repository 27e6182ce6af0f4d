// Package metrics exposes Prometheus collectors for the dashboard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tokpee"

// Result labels
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultFallback = "fallback"
)

// Metrics holds every collector on a private registry
type Metrics struct {
	registry *prometheus.Registry

	datasetsIngested   *prometheus.CounterVec
	datasetRows        prometheus.Histogram
	aggregations       prometheus.Counter
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	generationTokens   *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		datasetsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datasets_ingested_total",
			Help:      "Uploaded files by layout and parse result.",
		}, []string{"format", "result"}),
		datasetRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows per successfully parsed dataset.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		aggregations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "Chart aggregations computed.",
		}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Text generation calls by operation and result.",
		}, []string{"operation", "result"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of text generation calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		generationTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_tokens_total",
			Help:      "Tokens consumed by text generation, by model and kind.",
		}, []string{"model", "kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.datasetsIngested,
		m.datasetRows,
		m.aggregations,
		m.generations,
		m.generationDuration,
		m.generationTokens,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveIngest records one upload attempt. rows is ignored on failure.
func (m *Metrics) ObserveIngest(format, result string, rows int) {
	if m == nil {
		return
	}
	m.datasetsIngested.WithLabelValues(format, result).Inc()
	if result == ResultOK {
		m.datasetRows.Observe(float64(rows))
	}
}

// ObserveAggregation records one computed chart series
func (m *Metrics) ObserveAggregation() {
	if m == nil {
		return
	}
	m.aggregations.Inc()
}

// ObserveGeneration records one text generation call
func (m *Metrics) ObserveGeneration(operation, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(operation, result).Inc()
	m.generationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveTokens records token usage reported by a provider
func (m *Metrics) ObserveTokens(model string, prompt, completion int) {
	if m == nil {
		return
	}
	m.generationTokens.WithLabelValues(model, "prompt").Add(float64(prompt))
	m.generationTokens.WithLabelValues(model, "completion").Add(float64(completion))
}
