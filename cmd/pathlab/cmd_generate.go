package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/mazegen"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		size     int
		mode     string
		prob     float64
		seed     int64
		ascii    bool
		output   string
		solvable bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze",
		Long: `Prints a new maze as JSON (or YAML when --out ends in .yaml/.yml).
random mazes are size×size with walls at probability --prob, start at the
top-left and goal at the bottom-right corner. carved and kruskal mazes are
perfect mazes on an odd grid, built by a backtracker and by randomized
Kruskal respectively. --ascii draws the maze instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			var (
				m   *mazegen.Maze
				err error
			)
			switch strings.ToLower(mode) {
			case "random":
				m, err = mazegen.Random(size, size, prob, rng)
			case "carved":
				m, err = mazegen.Carved(size, rng)
			case "kruskal":
				m, err = mazegen.Kruskal(size, rng)
			default:
				return fmt.Errorf("unknown mode %q (want random, carved or kruskal)", mode)
			}
			if err != nil {
				return err
			}
			if solvable {
				opened, err := mazegen.EnsurePath(m, false)
				if err != nil {
					return err
				}
				root.logger.Debug("maze repaired", "walls_opened", opened)
			}
			root.logger.Debug("maze generated", "mode", mode, "size", m.SizeLabel(), "seed", seed)

			if ascii {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
				return err
			}
			data, err := encodeMaze(m, output)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return os.WriteFile(output, data, 0o644)
		},
	}
	f := cmd.Flags()
	f.IntVar(&size, "size", 15, "maze side length")
	f.StringVar(&mode, "mode", "random", "random|carved|kruskal")
	f.Float64Var(&prob, "prob", 0.3, "wall probability for random mazes")
	f.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	f.BoolVar(&ascii, "ascii", false, "draw the maze instead of printing JSON")
	f.BoolVar(&solvable, "solvable", false, "open the fewest walls needed for a 4-way path")
	f.StringVarP(&output, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func encodeMaze(m *mazegen.Maze, path string) ([]byte, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return yaml.Marshal(m)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
