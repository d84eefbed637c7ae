package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters of one run. All methods are safe to call on a
// nil *Metrics, which records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	scanned      prometheus.Counter
	drawn        prometheus.Counter
	skipped      *prometheus.CounterVec
	elevationMin prometheus.Gauge
	elevationMax prometheus.Gauge
}

// New returns Metrics registered on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		scanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "gps_overlay_scanned_records_total",
			Help: "The total number of records read by the range scan",
		}),
		drawn: factory.NewCounter(prometheus.CounterOpts{
			Name: "gps_overlay_drawn_points_total",
			Help: "The total number of points drawn onto the canvas",
		}),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gps_overlay_skipped_lines_total",
			Help: "The total number of input lines skipped, by pass and reason",
		}, []string{"pass", "reason"}),
		elevationMin: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gps_overlay_elevation_min",
			Help: "The lower bound of the elevation range used for coloring",
		}),
		elevationMax: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gps_overlay_elevation_max",
			Help: "The upper bound of the elevation range used for coloring",
		}),
	}
}

// Registry returns the registry m's collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Scanned() {
	if m != nil {
		m.scanned.Inc()
	}
}

func (m *Metrics) Drawn() {
	if m != nil {
		m.drawn.Inc()
	}
}

// Skipped counts a skipped line in pass ("scan" or "draw").
func (m *Metrics) Skipped(pass, reason string) {
	if m != nil {
		m.skipped.WithLabelValues(pass, reason).Inc()
	}
}

// Range records the elevation range used for coloring.
func (m *Metrics) Range(min, max float64) {
	if m != nil {
		m.elevationMin.Set(min)
		m.elevationMax.Set(max)
	}
}

// WriteTextfile writes m in the Prometheus text format to path, for the
// node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
