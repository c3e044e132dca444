// Package cmd - units and check commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"conversion-wiz/core/output"
)

func newUnitsCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "units",
		Aliases: []string{"list"},
		Short:   "List available units and their aliases",
		Long: `List available units and their aliases.

Intermediate units only serve as stepping stones between other units and
are hidden unless --all is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			listing := g.UnitsFormatted()
			if all {
				listing = nil
				for _, u := range g.Units() {
					line := u.String()
					if u.Intermediate() {
						line += " [intermediate]"
					}
					listing = append(listing, line)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Units:")
			for _, line := range output.FormatListing(listing) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include intermediate units")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the unit definitions and report any error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			source := a.cfg.Definitions.Path
			if source == "" {
				source = "built-in catalog"
			}
			stats := g.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d units (%d listed), %d conversions\n",
				source, stats.Units, stats.Listed, stats.Edges/2)
			return nil
		},
	}
}
