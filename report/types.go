package report

import (
	"errors"
	"time"

	"github.com/katalvlaran/pathlab/gridgraph"
)

var (
	// ErrNilResult is returned by FromResult for a nil result.
	ErrNilResult = errors.New("report: result is nil")

	// ErrNoWinner is returned by Winner when no summary has a successful run.
	ErrNoWinner = errors.New("report: no successful runs")
)

// Record is the serialised outcome of a single search.
type Record struct {
	Success       bool                 `json:"success" yaml:"success"`
	Path          []gridgraph.Position `json:"path" yaml:"path"`
	Explored      []gridgraph.Position `json:"explored" yaml:"explored"`
	NodesExplored int                  `json:"nodes_explored" yaml:"nodes_explored"`
	PathLength    int                  `json:"path_length" yaml:"path_length"`
	PathCost      float64              `json:"path_cost" yaml:"path_cost"`
	TimeTaken     float64              `json:"time_taken" yaml:"time_taken"`
	Heuristic     string               `json:"heuristic" yaml:"heuristic"`
}

// Row is one line of the CSV run log.
type Row struct {
	Timestamp     time.Time
	RunID         string
	MazeSize      string
	Heuristic     string
	NodesExplored int
	PathLength    int
	PathCost      float64
	TimeSeconds   float64
	Success       bool
}

// Summary aggregates the rows of one heuristic. Averages cover successful
// runs only and are zero when there were none.
type Summary struct {
	Heuristic     string
	Runs          int
	Successes     int
	SuccessRate   float64 // percent, 0..100
	AvgNodes      float64
	AvgPathLength float64
	AvgTime       float64 // seconds
}
