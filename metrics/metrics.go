// Package metrics exposes Prometheus collectors for search runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathlab/astar"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeRejected = "rejected"
)

// Recorder owns the search collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	searches *prometheus.CounterVec
	nodes    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg. It panics if they are already
// registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathlab_searches_total",
			Help: "Total A* searches by heuristic and outcome",
		}, []string{"heuristic", "outcome"}),
		nodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathlab_nodes_explored",
			Help:    "Cells finalised per completed search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16), // 1 to ~32k cells
		}, []string{"heuristic"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathlab_search_seconds",
			Help:    "Wall-clock time per completed search",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~0.3s
		}, []string{"heuristic"}),
	}
}

// Observe records one completed search. A nil res counts as rejected.
func (r *Recorder) Observe(heuristic string, res *astar.Result) {
	if r == nil {
		return
	}
	if res == nil {
		r.searches.WithLabelValues(heuristic, OutcomeRejected).Inc()
		return
	}
	outcome := OutcomeNoPath
	if res.Success {
		outcome = OutcomeFound
	}
	r.searches.WithLabelValues(heuristic, outcome).Inc()
	r.nodes.WithLabelValues(heuristic).Observe(float64(res.NodesExplored))
	r.duration.WithLabelValues(heuristic).Observe(res.TimeTaken.Seconds())
}
