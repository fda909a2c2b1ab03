package experiment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/experiment"
	"github.com/katalvlaran/pathlab/heuristic"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() experiment.Config {
	return experiment.Config{
		Seed:       5,
		Parallel:   3,
		Heuristics: heuristic.Names(),
		Difficulties: []experiment.Difficulty{
			{Name: "Easy", Rows: 6, Cols: 6, ObstacleProb: 0.25, Mazes: 3},
			{Name: "Carved", Mode: experiment.ModeCarved, Rows: 9, Mazes: 2},
			{Name: "Kruskal", Mode: experiment.ModeKruskal, Rows: 7, Mazes: 1},
			{Name: "Fixed", Mode: experiment.ModeMedium, Mazes: 1},
		},
	}
}

func TestRun(t *testing.T) {
	cfg := smallConfig()
	rep, err := experiment.Run(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	nh := len(cfg.Heuristics)
	require.Len(t, rep.Trials, (3+2+1+1)*nh)

	ids := make(map[string]bool)
	for i, tr := range rep.Trials {
		// difficulty → maze → heuristic order
		assert.Equal(t, cfg.Heuristics[i%nh], tr.Heuristic)
		assert.NotEmpty(t, tr.RunID)
		assert.False(t, ids[tr.RunID], "run ids are unique")
		ids[tr.RunID] = true
		assert.Equal(t, tr.Reachable, tr.Record.Success)
		assert.False(t, tr.Truncated)

		if heuristic.Admissible(tr.Heuristic, cfg.AllowDiagonal) && tr.Reachable {
			assert.Truef(t, tr.Optimal, "%s %s maze %d cost %v want %v", tr.Difficulty, tr.Heuristic, tr.MazeID, tr.Record.PathCost, tr.OptimalCost)
		}
	}
	assert.Equal(t, "Easy", rep.Trials[0].Difficulty)
	assert.Equal(t, "6x6", rep.Trials[0].MazeSize)
	assert.Equal(t, "Fixed", rep.Trials[len(rep.Trials)-1].Difficulty)
	assert.Equal(t, "10x10", rep.Trials[len(rep.Trials)-1].MazeSize)

	// perfect mazes are always solvable
	for _, tr := range rep.Trials {
		if tr.Difficulty == "Carved" || tr.Difficulty == "Kruskal" {
			assert.True(t, tr.Record.Success)
		}
	}

	rows := rep.Rows()
	require.Len(t, rows, len(rep.Trials))
	assert.Equal(t, rep.Trials[0].RunID, rows[0].RunID)
	assert.Len(t, rep.Summaries(), nh)

	for name, n := range rep.Suboptimal() {
		assert.Equal(t, heuristic.Custom, name, "only custom may be suboptimal")
		assert.Positive(t, n)
	}
}

// TestRun_Deterministic: same seed, same mazes and outcomes regardless of
// worker count and completion order.
func TestRun_Deterministic(t *testing.T) {
	cfg := smallConfig()
	a, err := experiment.Run(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	cfg.Parallel = 1
	b, err := experiment.Run(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	type key struct {
		Difficulty string
		Maze       int
		Heuristic  string
		Nodes      int
		Cost       float64
		Success    bool
	}
	project := func(r *experiment.Report) []key {
		out := make([]key, len(r.Trials))
		for i, tr := range r.Trials {
			out[i] = key{tr.Difficulty, tr.MazeID, tr.Heuristic, tr.Record.NodesExplored, tr.Record.PathCost, tr.Record.Success}
		}

		return out
	}
	if diff := cmp.Diff(project(a), project(b)); diff != "" {
		t.Fatalf("reports differ (-parallel +serial):\n%s", diff)
	}
}

func TestRun_Truncated(t *testing.T) {
	cfg := experiment.Config{
		Seed:          1,
		Parallel:      2,
		Heuristics:    []string{heuristic.Manhattan},
		MaxExpansions: 1,
		Difficulties:  []experiment.Difficulty{{Name: "Open", Rows: 5, Cols: 5, Mazes: 1}},
	}
	rep, err := experiment.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, rep.Trials, 1)
	tr := rep.Trials[0]
	assert.True(t, tr.Truncated)
	assert.False(t, tr.Record.Success)
	assert.True(t, tr.Reachable)
	assert.Equal(t, 1, tr.Record.NodesExplored)
}

func TestRun_Errors(t *testing.T) {
	cfg := smallConfig()
	cfg.Heuristics = []string{"bogus"}
	_, err := experiment.Run(context.Background(), cfg, quietLogger())
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = experiment.Run(ctx, smallConfig(), quietLogger())
	assert.ErrorIs(t, err, astar.ErrAborted)
}

func TestRun_EnsurePath(t *testing.T) {
	cfg := experiment.Config{
		Seed:       8,
		Parallel:   2,
		Heuristics: []string{heuristic.Octile},
		Difficulties: []experiment.Difficulty{
			{Name: "Dense", Rows: 12, Cols: 12, ObstacleProb: 0.5, Mazes: 10, EnsurePath: true},
		},
	}
	rep, err := experiment.Run(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	for _, tr := range rep.Trials {
		assert.True(t, tr.Reachable)
		assert.True(t, tr.Record.Success)
		assert.True(t, tr.Optimal)
	}
}
