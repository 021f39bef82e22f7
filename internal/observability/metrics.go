package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec // labels: route, status
	RequestDuration *prometheus.HistogramVec
	DatasetReady    prometheus.Gauge

	// Region photo proxy metrics.
	PhotoRequests      *prometheus.CounterVec // labels: outcome={success,fallback}
	PhotoCache         *prometheus.CounterVec // labels: result={hit,miss}
	PhotoFetchDuration prometheus.Histogram
	PhotoEnabled       prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agri_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request handling duration.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		DatasetReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agri_dashboard",
			Name:      "dataset_ready",
			Help:      "1 once the sample dataset has been generated.",
		}),
		PhotoRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_dashboard",
			Name:      "photo_requests_total",
			Help:      "Region photo requests by outcome.",
		}, []string{"outcome"}),
		PhotoCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agri_dashboard",
			Name:      "photo_cache_total",
			Help:      "Region photo cache lookups by result.",
		}, []string{"result"}),
		PhotoFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agri_dashboard",
			Name:      "photo_fetch_duration_seconds",
			Help:      "Upstream photo fetch duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		PhotoEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agri_dashboard",
			Name:      "photo_enabled",
			Help:      "1 when the region photo proxy is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.RequestDuration,
		m.DatasetReady,
		m.PhotoRequests,
		m.PhotoCache,
		m.PhotoFetchDuration,
		m.PhotoEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_dashboard", Name: "http_requests_total"}, []string{"route", "status"}),
		RequestDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "agri_dashboard", Name: "http_request_duration_seconds"}, []string{"route"}),
		DatasetReady:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "agri_dashboard", Name: "dataset_ready"}),
		PhotoRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_dashboard", Name: "photo_requests_total"}, []string{"outcome"}),
		PhotoCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "agri_dashboard", Name: "photo_cache_total"}, []string{"result"}),
		PhotoFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "agri_dashboard", Name: "photo_fetch_duration_seconds"}),
		PhotoEnabled:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "agri_dashboard", Name: "photo_enabled"}),
	}
}
