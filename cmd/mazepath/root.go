package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds the persistent flags and what PersistentPreRunE derives from them.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg      config.Config
	logger   *slog.Logger
	shutdown telemetry.ShutdownFunc
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "mazepath",
		Short: "Find paths through square mazes with DFS, BFS and A*",
		Long: `mazepath reads a maze file and searches it from start to goal.

Maze file format:
  (width,height)
  [v0,v1,...,vN-1]     one line per row
  ...

  0 = open, 1 = wall, 2 = start, 3 = goal; width must equal height.

Examples:
  mazepath solve laberinto.txt
  mazepath solve laberinto.txt --strategy bfs,astar --overlay
  mazepath graph laberinto.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "override log format (text, json)")

	cmd.AddCommand(newSolveCmd(opts), newGraphCmd(opts), newVersionCmd(opts))

	return cmd
}

// load reads the config file (or defaults), applies flag overrides, builds the
// logger and installs the telemetry exporters.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = cfg.Log.Logger(cmd.ErrOrStderr())
	o.logger.Debug("configuration loaded", slog.String("path", o.configPath))

	shutdown, err := telemetry.Init(cmd.Context(), cfg.Telemetry, version, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.shutdown = shutdown

	return nil
}

// flush exports buffered spans and metrics and stops the providers.
func (o *rootOptions) flush(ctx context.Context) error {
	if o.shutdown == nil {
		return nil
	}
	shutdown := o.shutdown
	o.shutdown = nil
	if err := shutdown(ctx); err != nil {
		o.logger.Warn("telemetry shutdown failed", slog.Any("error", err))
		return err
	}

	return nil
}

// flushAfter wraps a RunE so telemetry is flushed even when it fails;
// cobra skips post-run hooks after an error.
func (o *rootOptions) flushAfter(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)

		return errors.Join(err, o.flush(cmd.Context()))
	}
}

func newVersionCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mazepath version",
		Args:  cobra.NoArgs,
		RunE: root.flushAfter(func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "mazepath", version)
			return err
		}),
	}
}
