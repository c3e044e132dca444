// Package cmd - convert and path commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"conversion-wiz/core/output"
	"conversion-wiz/internal/errors"
)

func newConvertCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value from one unit to another",
		Long: `Convert a value between two units, given by name or alias.

Examples:
  conversion-wiz convert 15 C K
  conversion-wiz convert --explain 1 mile km
  conversion-wiz convert -p 2 -- -40 F C`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := output.ParseValue(args[0])
			if err != nil {
				return errors.Input(fmt.Sprintf("invalid value %q", args[0]))
			}
			from, to := args[1], args[2]

			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			path, err := g.Path(from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output.FormatResult(value, from, path.Apply(value), to, a.cfg.Output.Precision))
			if explain || a.cfg.Output.ShowPath {
				for _, line := range output.FormatPath(path) {
					fmt.Fprintf(out, "\t%s\n", line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show the conversion rules applied")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Show the chain of rules connecting two units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			path, err := g.Path(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d hops)\n", path, path.Len())
			for _, line := range output.FormatPath(path) {
				fmt.Fprintf(out, "\t%s\n", line)
			}
			return nil
		},
	}
}
