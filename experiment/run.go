package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/mazegen"
	"github.com/katalvlaran/pathlab/report"
)

// costTolerance absorbs float summation order between engine and oracle.
const costTolerance = 1e-9

// Trial is one heuristic run on one maze.
type Trial struct {
	RunID      string
	Timestamp  time.Time
	Difficulty string
	MazeID     int
	MazeSize   string
	Heuristic  string
	Record     report.Record

	// Reachable and OptimalCost come from the uniform-cost oracle.
	Reachable   bool
	OptimalCost float64
	// Optimal is true when the search found a path of OptimalCost.
	Optimal bool
	// Truncated is true when MaxExpansions stopped the search.
	Truncated bool
}

// Report is the outcome of Run.
type Report struct {
	Config Config
	Trials []Trial
}

// Rows converts trials to run-log rows, in trial order.
func (r *Report) Rows() []report.Row {
	rows := make([]report.Row, len(r.Trials))
	for i, t := range r.Trials {
		rows[i] = t.Record.Row(t.Timestamp, t.RunID, t.MazeSize)
	}

	return rows
}

// Summaries aggregates trials per heuristic.
func (r *Report) Summaries() []report.Summary {
	return report.Summarize(r.Rows())
}

// Suboptimal counts, per heuristic, trials that found a path costlier than
// the oracle's.
func (r *Report) Suboptimal() map[string]int {
	out := make(map[string]int)
	for _, t := range r.Trials {
		if t.Record.Success && !t.Optimal {
			out[t.Heuristic]++
		}
	}

	return out
}

// generated is one maze with its oracle answer.
type generated struct {
	difficulty string
	id         int
	maze       *mazegen.Maze
	reachable  bool
	optimal    float64
}

// job is one (maze, heuristic) pair; slot is its position in Report.Trials.
type job struct {
	slot      int
	maze      *generated
	heuristic string
}

// Run executes the suite. Mazes are generated sequentially from cfg.Seed so
// the same config always yields the same mazes; searches then run on at most
// cfg.Parallel goroutines. The first hard error cancels the remaining work.
// A search stopped by MaxExpansions is kept as a failed, truncated trial.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Phase 1: mazes and oracle costs
	mazes, err := generate(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("mazes generated", "count", len(mazes), "seed", cfg.Seed)

	jobs := make([]job, 0, len(mazes)*len(cfg.Heuristics))
	for _, m := range mazes {
		for _, h := range cfg.Heuristics {
			jobs = append(jobs, job{slot: len(jobs), maze: m, heuristic: h})
		}
	}

	// Phase 2: searches
	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	logger.Info("running searches", "trials", len(jobs), "workers", parallel, "diagonal", cfg.AllowDiagonal)

	trials := make([]Trial, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, j := range jobs {
		g.Go(func() error {
			t, err := runTrial(gctx, cfg, j)
			if err != nil {
				return fmt.Errorf("experiment: %s maze %d %s: %w", j.maze.difficulty, j.maze.id, j.heuristic, err)
			}
			trials[j.slot] = t
			logger.Debug("trial done",
				"difficulty", t.Difficulty, "maze", t.MazeID, "heuristic", t.Heuristic,
				"success", t.Record.Success, "nodes", t.Record.NodesExplored, "optimal", t.Optimal)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("suite complete", "trials", len(trials))

	return &Report{Config: cfg, Trials: trials}, nil
}

func runTrial(ctx context.Context, cfg Config, j job) (Trial, error) {
	req := j.maze.maze.Request(j.heuristic, cfg.AllowDiagonal)
	res, err := astar.Run(ctx, req, astar.WithMaxExpansions(cfg.MaxExpansions))
	truncated := errors.Is(err, astar.ErrExpansionLimit)
	if err != nil && !truncated {
		return Trial{}, err
	}
	rec, err := report.FromResult(res, j.heuristic)
	if err != nil {
		return Trial{}, err
	}

	return Trial{
		RunID:       uuid.NewString(),
		Timestamp:   time.Now(),
		Difficulty:  j.maze.difficulty,
		MazeID:      j.maze.id,
		MazeSize:    j.maze.maze.SizeLabel(),
		Heuristic:   j.heuristic,
		Record:      rec,
		Reachable:   j.maze.reachable,
		OptimalCost: j.maze.optimal,
		Optimal:     rec.Success && math.Abs(rec.PathCost-j.maze.optimal) <= costTolerance,
		Truncated:   truncated,
	}, nil
}

// generate builds every maze of every difficulty, in config order.
func generate(cfg Config) ([]*generated, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var out []*generated
	for _, d := range cfg.Difficulties {
		for id := 0; id < d.Mazes; id++ {
			m, err := d.build(rng)
			if err != nil {
				return nil, fmt.Errorf("experiment: %s maze %d: %w", d.Name, id, err)
			}
			if d.EnsurePath {
				if _, err := mazegen.EnsurePath(m, cfg.AllowDiagonal); err != nil {
					return nil, fmt.Errorf("experiment: %s maze %d: %w", d.Name, id, err)
				}
			}
			g, err := m.GridGraph()
			if err != nil {
				return nil, fmt.Errorf("experiment: %s maze %d: %w", d.Name, id, err)
			}
			cost, ok, err := dijkstra.Distance(g, m.Start, m.Goal, cfg.AllowDiagonal)
			if err != nil {
				return nil, fmt.Errorf("experiment: %s maze %d oracle: %w", d.Name, id, err)
			}
			out = append(out, &generated{difficulty: d.Name, id: id, maze: m, reachable: ok, optimal: cost})
		}
	}

	return out, nil
}

func (d Difficulty) build(rng *rand.Rand) (*mazegen.Maze, error) {
	switch d.mode() {
	case ModeCarved:
		return mazegen.Carved(d.Rows, rng)
	case ModeKruskal:
		return mazegen.Kruskal(d.Rows, rng)
	case ModeSimple:
		return mazegen.Simple(), nil
	case ModeMedium:
		return mazegen.Medium(), nil
	default:
		return mazegen.Random(d.Rows, d.Cols, d.ObstacleProb, rng)
	}
}
