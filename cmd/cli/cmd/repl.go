// Package cmd - interactive prompt
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"conversion-wiz/core/repl"
	"conversion-wiz/internal/watcher"
)

func newREPLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive conversion prompt",
		Long: `Start the interactive conversion prompt.

Enter a source unit, a target unit and a value. Type 'list' to list
units or 'exit' to quit. With --watch the definition file is reloaded
whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: a.runREPL,
	}

	cmd.Flags().Bool("watch", false, "reload the definition file when it changes")
	_ = a.v.BindPFlag("watch.enabled", cmd.Flags().Lookup("watch"))
	return cmd
}

func (a *app) runREPL(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	opts := []repl.Option{
		repl.WithLogger(a.logger),
		repl.WithPrecision(a.cfg.Output.Precision),
		repl.WithShowPath(a.cfg.Output.ShowPath),
	}

	if a.cfg.Watch.Enabled {
		path := a.cfg.Definitions.Path
		if path == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --watch ignored, no definition file configured")
		} else {
			w, err := watcher.New(watcher.Config{
				Path:        path,
				DebounceDur: a.cfg.Watch.Debounce(),
				Logger:      a.logger,
			})
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()

			changes, err := w.Start()
			if err != nil {
				return err
			}
			a.logger.Info("watching definitions", zap.String("path", path))
			opts = append(opts, repl.WithReload(changes, a.loadGraph))
		}
	}

	return repl.NewSession(g, cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(ctx)
}
