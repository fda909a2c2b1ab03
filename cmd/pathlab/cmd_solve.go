package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
	"github.com/katalvlaran/pathlab/mazegen"
	"github.com/katalvlaran/pathlab/report"
)

type solveOptions struct {
	file          string
	heuristic     string
	all           bool
	diagonal      bool
	maxExpansions int
	show          bool
	asJSON        bool
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze file with one or all heuristics",
		Long: `Reads a maze ({grid, start, goal} as .json, .yaml or .yml), runs A*
and prints one table row per heuristic. --show draws the path of each
successful search; --json prints the result records instead of a table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "maze file (required)")
	f.StringVar(&opts.heuristic, "heuristic", astar.DefaultHeuristic, "heuristic: "+strings.Join(heuristic.Names(), "|"))
	f.BoolVar(&opts.all, "all", false, "run every heuristic")
	f.BoolVar(&opts.diagonal, "diagonal", false, "allow 8-directional movement")
	f.IntVar(&opts.maxExpansions, "max-expansions", 0, "stop after this many expanded cells (0 = no limit)")
	f.BoolVar(&opts.show, "show", false, "draw each found path")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON records")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("heuristic", "all")

	return cmd
}

func runSolve(ctx context.Context, w io.Writer, root *rootOptions, opts *solveOptions) error {
	m, err := mazegen.Load(opts.file)
	if err != nil {
		return err
	}
	names := []string{opts.heuristic}
	if opts.all {
		names = heuristic.Names()
	}

	records := make([]report.Record, 0, len(names))
	for _, name := range names {
		res, err := astar.Run(ctx, m.Request(name, opts.diagonal), astar.WithMaxExpansions(opts.maxExpansions))
		if errors.Is(err, astar.ErrExpansionLimit) {
			root.logger.Warn("search truncated", "heuristic", name, "max_expansions", opts.maxExpansions)
		} else if err != nil {
			return err
		}
		rec, err := report.FromResult(res, name)
		if err != nil {
			return err
		}
		root.logger.Debug("solved", "heuristic", name, "success", rec.Success, "nodes", rec.NodesExplored)
		records = append(records, rec)
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Fprintf(w, "maze %s  start %v  goal %v  diagonal=%v\n", m.SizeLabel(), m.Start, m.Goal, opts.diagonal)
	report.RenderRecords(w, records)
	if !opts.show {
		return nil
	}
	g, err := m.GridGraph()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if !rec.Success {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n%s\n", rec.Heuristic, drawPath(g, rec.Path))
	}

	return nil
}

// drawPath renders g with S and E at the path ends and * along it.
func drawPath(g *gridgraph.Grid, path []gridgraph.Position) string {
	on := make(map[gridgraph.Position]bool, len(path))
	for _, p := range path {
		on[p] = true
	}
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := gridgraph.Pos(r, c)
			switch {
			case len(path) > 0 && p == path[0]:
				sb.WriteByte('S')
			case len(path) > 0 && p == path[len(path)-1]:
				sb.WriteByte('E')
			case on[p]:
				sb.WriteByte('*')
			case g.IsWall(p):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
