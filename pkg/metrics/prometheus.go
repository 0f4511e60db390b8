// Package metrics provides Prometheus metrics for the cricanalytics pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// File outcomes recorded by RecordFile.
const (
	OutcomeLoaded  = "loaded"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Aggregation views recorded by RecordAggregationDuration.
const (
	ViewBatting = "batting"
	ViewImpact  = "impact"
)

// Manager owns the pipeline and HTTP metrics.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Ingestion
	filesTotal         *prometheus.CounterVec
	deliveriesIngested prometheus.Counter
	ingestDuration     prometheus.Histogram

	// Aggregation
	aggregationDuration *prometheus.HistogramVec
	batsmen             prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "cricanalytics",
		subsystem:        "pipeline",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		enabled:          true,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.filesTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "files_total",
		Help:        "Match files seen during ingestion, by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.deliveriesIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "deliveries_ingested_total",
		Help:        "Delivery rows flattened from match files",
		ConstLabels: m.constLabels,
	})

	m.ingestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "ingest_duration_milliseconds",
		Help:        "Time to load and flatten one directory",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.aggregationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_duration_milliseconds",
		Help:        "Time to compute an aggregate view",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"view"})

	m.batsmen = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "batsmen",
		Help:        "Distinct batsmen in the latest run",
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_errors_total",
		Help:        "HTTP responses with a 4xx or 5xx status by error type",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "error_type"})
}

// RecordFile counts one match file by outcome.
func (m *Manager) RecordFile(outcome string) {
	if m.enabled {
		m.filesTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordDeliveries adds n flattened rows.
func (m *Manager) RecordDeliveries(n int) {
	if m.enabled && n > 0 {
		m.deliveriesIngested.Add(float64(n))
	}
}

// RecordIngestDuration observes one directory load.
func (m *Manager) RecordIngestDuration(ms float64) {
	if m.enabled {
		m.ingestDuration.Observe(ms)
	}
}

// RecordAggregationDuration observes one aggregate computation.
func (m *Manager) RecordAggregationDuration(view string, ms float64) {
	if m.enabled {
		m.aggregationDuration.WithLabelValues(view).Observe(ms)
	}
}

// UpdateBatsmen sets the batsmen gauge.
func (m *Manager) UpdateBatsmen(n int) {
	if m.enabled {
		m.batsmen.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// RecordHTTPError counts one failed HTTP request.
func (m *Manager) RecordHTTPError(endpoint, method, errorType string) {
	if m.enabled {
		m.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// Package-level helpers record on the global manager.

func RecordFile(outcome string) { globalManager.RecordFile(outcome) }

func RecordDeliveries(n int) { globalManager.RecordDeliveries(n) }

func RecordIngestDuration(ms float64) { globalManager.RecordIngestDuration(ms) }

func RecordAggregationDuration(view string, ms float64) {
	globalManager.RecordAggregationDuration(view, ms)
}

func UpdateBatsmen(n int) { globalManager.UpdateBatsmen(n) }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, ms)
}

func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.RecordHTTPError(endpoint, method, errorType)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
