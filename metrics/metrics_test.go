package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/metrics"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.Observe("manhattan", &astar.Result{Success: true, NodesExplored: 12, TimeTaken: time.Millisecond})
	rec.Observe("manhattan", &astar.Result{Success: false, NodesExplored: 30})
	rec.Observe("manhattan", nil)
	rec.Observe("octile", &astar.Result{Success: true, NodesExplored: 4})

	expected := `
# HELP pathlab_searches_total Total A* searches by heuristic and outcome
# TYPE pathlab_searches_total counter
pathlab_searches_total{heuristic="manhattan",outcome="found"} 1
pathlab_searches_total{heuristic="manhattan",outcome="no_path"} 1
pathlab_searches_total{heuristic="manhattan",outcome="rejected"} 1
pathlab_searches_total{heuristic="octile",outcome="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pathlab_searches_total"))

	n, err := testutil.GatherAndCount(reg, "pathlab_nodes_explored", "pathlab_search_seconds")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "two heuristics × two histograms")
}

func TestRecorder_Nil(t *testing.T) {
	var rec *metrics.Recorder
	assert.NotPanics(t, func() { rec.Observe("custom", &astar.Result{}) })
}

func TestNewRecorder_DuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
