package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions carries persistent flags and the logger built from them.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pathlab",
		Short: "Compare A* heuristics on obstacle grids",
		Long: "pathlab solves grid mazes with A* under interchangeable heuristics\n" +
			"(manhattan, euclidean, chebyshev, octile, custom), runs comparison\n" +
			"suites and serves the engine over HTTP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newExperimentCmd(opts))

	return cmd
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
