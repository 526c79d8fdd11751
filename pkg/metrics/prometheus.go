// Package metrics provides Prometheus metrics for the portfolio service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Catalog
	catalogProjects prometheus.Gauge
	catalogGames    prometheus.Gauge
	filterQueries   *prometheus.CounterVec
	filterResults   prometheus.Histogram
	suggestions     prometheus.Counter

	// Result memo
	memoHits   prometheus.Counter
	memoMisses prometheus.Counter
	memoSize   prometheus.Gauge

	// Navigation and theme
	viewResolutions *prometheus.CounterVec
	anchorScrolls   *prometheus.CounterVec
	themeChanges    *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton behind the package-level recorders

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "portfolio",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.catalogProjects = auto.NewGauge(m.gaugeOpts("projects", "Number of project records in the loaded catalog"))
	m.catalogGames = auto.NewGauge(m.gaugeOpts("games", "Number of game records in the loaded catalog"))
	m.filterQueries = auto.NewCounterVec(
		m.counterOpts("filter_queries_total", "Filter evaluations by kind of restriction applied"),
		[]string{"kind"},
	)
	m.filterResults = auto.NewHistogram(m.histogramOpts(
		"filter_result_size", "Number of records returned by a filter evaluation",
		[]float64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55},
	))
	m.suggestions = auto.NewCounter(m.counterOpts("suggestions_total", "Empty results answered with title suggestions"))

	m.memoHits = auto.NewCounter(m.counterOpts("memo_hits_total", "Filter results served from the memo"))
	m.memoMisses = auto.NewCounter(m.counterOpts("memo_misses_total", "Filter results computed from scratch"))
	m.memoSize = auto.NewGauge(m.gaugeOpts("memo_entries", "Entries currently held by the filter memo"))

	m.viewResolutions = auto.NewCounterVec(
		m.counterOpts("view_resolutions_total", "Locations resolved to a view"),
		[]string{"view"},
	)
	m.anchorScrolls = auto.NewCounterVec(
		m.counterOpts("anchor_scrolls_total", "Resolved locations that requested a scroll to an anchor"),
		[]string{"anchor"},
	)
	m.themeChanges = auto.NewCounterVec(
		m.counterOpts("theme_changes_total", "Theme preference writes by resulting theme"),
		[]string{"theme"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "HTTP requests by endpoint, method and status"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorsByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Failed HTTP requests by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorsByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Errors by type and severity"),
		[]string{"error_type", "severity"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "Heap bytes allocated"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "Average GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// SetCatalogSize records the size of the loaded catalog.
func (m *Manager) SetCatalogSize(projects, games int) {
	if !m.enabled {
		return
	}
	m.catalogProjects.Set(float64(projects))
	m.catalogGames.Set(float64(games))
}

// RecordFilter records one filter evaluation and its result size.
// kind is "all" for an empty state and "restricted" otherwise.
func (m *Manager) RecordFilter(kind string, results int) {
	if !m.enabled {
		return
	}
	m.filterQueries.WithLabelValues(kind).Inc()
	m.filterResults.Observe(float64(results))
}

// RecordSuggestion counts an empty result answered with suggestions.
func (m *Manager) RecordSuggestion() {
	if !m.enabled {
		return
	}
	m.suggestions.Inc()
}

// RecordMemoLookup counts a memo hit or miss and updates its size.
func (m *Manager) RecordMemoLookup(hit bool, entries int) {
	if !m.enabled {
		return
	}
	if hit {
		m.memoHits.Inc()
	} else {
		m.memoMisses.Inc()
	}
	m.memoSize.Set(float64(entries))
}

// RecordViewResolution counts a resolved view and, when non-empty, the anchor scrolled to.
func (m *Manager) RecordViewResolution(view, anchor string) {
	if !m.enabled {
		return
	}
	m.viewResolutions.WithLabelValues(view).Inc()
	if anchor != "" {
		m.anchorScrolls.WithLabelValues(anchor).Inc()
	}
}

// RecordThemeChange counts a persisted theme preference.
func (m *Manager) RecordThemeChange(theme string) {
	if !m.enabled {
		return
	}
	m.themeChanges.WithLabelValues(theme).Inc()
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records a failed request by endpoint and by type.
func (m *Manager) RecordHTTPError(endpoint, method, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystem records memory, goroutine and GC figures.
func (m *Manager) UpdateSystem(allocBytes uint64, goroutines int, avgGCPauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(allocBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if avgGCPauseMs > 0 {
		m.systemGCPauseTime.Observe(avgGCPauseMs)
	}
}

// Default returns the process-wide manager bound to the custom registry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by the default manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
