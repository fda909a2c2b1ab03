package report

import (
	"time"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/gridgraph"
)

// FromResult builds the Record for res, labelled with the heuristic name.
// Path and Explored are copied so the Record does not alias res.
func FromResult(res *astar.Result, heuristic string) (Record, error) {
	if res == nil {
		return Record{}, ErrNilResult
	}

	return Record{
		Success:       res.Success,
		Path:          clonePositions(res.Path),
		Explored:      clonePositions(res.Explored),
		NodesExplored: res.NodesExplored,
		PathLength:    res.PathLength,
		PathCost:      res.Cost,
		TimeTaken:     res.TimeTaken.Seconds(),
		Heuristic:     heuristic,
	}, nil
}

// Row converts r into a CSV log row stamped with at.
func (r Record) Row(at time.Time, runID, mazeSize string) Row {
	return Row{
		Timestamp:     at,
		RunID:         runID,
		MazeSize:      mazeSize,
		Heuristic:     r.Heuristic,
		NodesExplored: r.NodesExplored,
		PathLength:    r.PathLength,
		PathCost:      r.PathCost,
		TimeSeconds:   r.TimeTaken,
		Success:       r.Success,
	}
}

// clonePositions never returns nil so that an empty path encodes as [].
func clonePositions(in []gridgraph.Position) []gridgraph.Position {
	out := make([]gridgraph.Position, len(in))
	copy(out, in)

	return out
}
