package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "statusline"

// Metrics holds the collectors updated by a status line.
type Metrics struct {
	Frames         prometheus.Counter
	RenderErrors   prometheus.Counter
	RenderDuration prometheus.Histogram
	Rows           prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them with reg.
// An empty namespace falls back to DefaultNamespace. A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total number of frames written to the terminal.",
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Total number of frames skipped because the write or flush failed.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent formatting and writing one frame.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}),
		Rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rows",
			Help:      "Line breaks spanned by the frame currently on screen.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Frames, m.RenderErrors, m.RenderDuration, m.Rows)
	}
	return m
}

// ObserveFrame records a successfully written frame.
func (m *Metrics) ObserveFrame(elapsed time.Duration, rows int) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.RenderDuration.Observe(elapsed.Seconds())
	m.Rows.Set(float64(rows))
}

// ObserveError records a frame that could not be written.
func (m *Metrics) ObserveError() {
	if m == nil {
		return
	}
	m.RenderErrors.Inc()
}

// ObserveErase records the final erase; nothing is on screen afterwards.
func (m *Metrics) ObserveErase() {
	if m == nil {
		return
	}
	m.Rows.Set(0)
}
