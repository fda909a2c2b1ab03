package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		addr       string
		dataDir    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pathfinding JSON API",
		Long: `Starts the HTTP API used by the browser frontend. Settings come from
--config (YAML) when given; --addr and --data-dir override the file.
Comparison runs are appended to <data-dir>/heuristic_data.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = server.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			cfg.Version = version

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, root.logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "server YAML config")
	cmd.Flags().StringVar(&addr, "addr", server.DefaultConfig().Addr, "listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", server.DefaultConfig().DataDir, "directory for the CSV log")

	return cmd
}
