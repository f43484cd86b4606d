package solve

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for lvtree_solve_total.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Metrics owns a private Prometheus registry with the solve collectors.
// A nil *Metrics records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
	nodes    prometheus.Histogram
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvtree_solve_duration_seconds",
			Help:    "Time to solve one problem instance",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"problem"}),
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvtree_solve_total",
			Help: "Solved instances by problem and outcome",
		}, []string{"problem", "outcome"}),
		nodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvtree_tree_nodes",
			Help:    "Node count of solved trees",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
	}
}

// WriteToTextfile dumps the registry in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func (m *Metrics) observe(p Problem, n int, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	m.total.WithLabelValues(string(p), outcome).Inc()
	if err == nil {
		m.duration.WithLabelValues(string(p)).Observe(d.Seconds())
		m.nodes.Observe(float64(n))
	}
}
