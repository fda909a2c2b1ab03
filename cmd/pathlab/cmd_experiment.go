package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/experiment"
	"github.com/katalvlaran/pathlab/report"
)

type experimentOptions struct {
	preset   string
	config   string
	out      string
	seed     int64
	parallel int
	diagonal bool
}

func newExperimentCmd(root *rootOptions) *cobra.Command {
	opts := &experimentOptions{}
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run a heuristic comparison suite",
		Long: `Generates the mazes of a suite, solves each with every configured
heuristic, appends one CSV row per run to --out and prints per-heuristic
averages with the winner (fewest nodes explored).

Presets: ` + strings.Join(experiment.Presets(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg experiment.Config
				err error
			)
			if opts.config != "" {
				cfg, err = experiment.LoadConfig(opts.config)
			} else {
				cfg, err = experiment.LoadPreset(opts.preset)
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel = opts.parallel
			}
			if cmd.Flags().Changed("diagonal") {
				cfg.AllowDiagonal = opts.diagonal
			}

			rep, err := experiment.Run(cmd.Context(), cfg, root.logger)
			if err != nil {
				return err
			}
			if opts.out != "" {
				log := report.NewCSVLog(opts.out)
				if err := log.Append(rep.Rows()...); err != nil {
					return err
				}
				root.logger.Info("results saved", "path", log.Path(), "rows", len(rep.Trials))
			}

			return printExperiment(cmd.OutOrStdout(), rep)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.preset, "preset", "full", "embedded suite name")
	f.StringVar(&opts.config, "config", "", "suite YAML file (overrides --preset)")
	f.StringVarP(&opts.out, "out", "o", filepath.Join("data", "experiment_results.csv"), "CSV file to append results to (empty to skip)")
	f.Int64Var(&opts.seed, "seed", 0, "override the suite seed")
	f.IntVar(&opts.parallel, "parallel", 0, "override the suite worker count")
	f.BoolVar(&opts.diagonal, "diagonal", false, "override diagonal movement")
	cmd.MarkFlagsMutuallyExclusive("preset", "config")

	return cmd
}

func printExperiment(w io.Writer, rep *experiment.Report) error {
	summaries := rep.Summaries()
	fmt.Fprintf(w, "%d trials, diagonal=%v, seed=%d\n", len(rep.Trials), rep.Config.AllowDiagonal, rep.Config.Seed)
	report.RenderTable(w, summaries)

	if sub := rep.Suboptimal(); len(sub) > 0 {
		names := make([]string, 0, len(sub))
		for name := range sub {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s returned %d suboptimal path(s)\n", name, sub[name])
		}
	}

	winner, err := report.Winner(summaries)
	if errors.Is(err, report.ErrNoWinner) {
		fmt.Fprintln(w, "no heuristic solved any maze")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "WINNER: %s (%.1f nodes on average)\n", strings.ToUpper(winner.Heuristic), winner.AvgNodes)

	return nil
}
