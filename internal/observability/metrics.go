package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the viewer.
type Metrics struct {
	LandmarksLoaded  prometheus.Gauge
	ViewRenders      *prometheus.CounterVec // labels: surface={map,panel}
	RenderDuration   prometheus.Histogram
	SelectionChanges prometheus.Counter

	// View-event publishing metrics.
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter
	PublisherEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all viewer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LandmarksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "coastal_viewer",
			Name:      "landmarks_loaded",
			Help:      "Number of landmarks in the loaded dataset.",
		}),
		ViewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_viewer",
			Name:      "view_renders_total",
			Help:      "Render-model builds by surface.",
		}, []string{"surface"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coastal_viewer",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete map+panel render cycle.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		SelectionChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_viewer",
			Name:      "selection_changes_total",
			Help:      "Session selection changes (idempotent re-selections excluded).",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_viewer",
			Name:      "view_events_published_total",
			Help:      "Selection events published to the analytics topic.",
		}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_viewer",
			Name:      "view_event_publish_errors_total",
			Help:      "Failed publishes of selection events.",
		}),
		PublisherEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "coastal_viewer",
			Name:      "view_event_publisher_enabled",
			Help:      "1 when the Kafka view-event publisher is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.LandmarksLoaded,
		m.ViewRenders,
		m.RenderDuration,
		m.SelectionChanges,
		m.EventsPublished,
		m.EventPublishErrors,
		m.PublisherEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LandmarksLoaded:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "coastal_viewer", Name: "landmarks_loaded"}),
		ViewRenders:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "coastal_viewer", Name: "view_renders_total"}, []string{"surface"}),
		RenderDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "coastal_viewer", Name: "render_duration_seconds"}),
		SelectionChanges:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "coastal_viewer", Name: "selection_changes_total"}),
		EventsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "coastal_viewer", Name: "view_events_published_total"}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "coastal_viewer", Name: "view_event_publish_errors_total"}),
		PublisherEnabled:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "coastal_viewer", Name: "view_event_publisher_enabled"}),
	}
}
