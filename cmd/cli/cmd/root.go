// Package cmd provides the CLI commands for conversion-wiz.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"conversion-wiz/core/catalog"
	"conversion-wiz/core/conversion"
	"conversion-wiz/internal/config"
	"conversion-wiz/internal/logging"
)

var version = "dev"

// SetVersion sets the version string reported by the version command
func SetVersion(v string) {
	version = v
}

// app carries state shared by all commands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the CLI
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "conversion-wiz",
		Short: "Convert values between units of measurement",
		Long: `conversion-wiz converts values between named units related by a network
of scale and offset rules. When no direct rule exists the fewest-hop chain
of rules is used.

Without a subcommand an interactive prompt is started.

Examples:
  conversion-wiz convert 15 C K
  conversion-wiz --definitions units.hcl convert --explain 1 mi km
  conversion-wiz units
  conversion-wiz repl --watch`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Sync() },
		RunE:              a.runREPL,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.conversion-wiz.json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringP("definitions", "d", "", "unit definition file (json, yaml or hcl); built-in catalog if empty")
	flags.String("format", "", "definition file format, overriding the file extension")
	flags.IntP("precision", "p", 6, "decimal places in results (-1 for full precision)")

	_ = a.v.BindPFlag("definitions.path", flags.Lookup("definitions"))
	_ = a.v.BindPFlag("definitions.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.precision", flags.Lookup("precision"))

	rootCmd.AddCommand(
		newConvertCmd(a),
		newPathCmd(a),
		newUnitsCmd(a),
		newCheckCmd(a),
		newREPLCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfgFile := a.cfgFile
	if cfgFile == "" {
		cfgFile = config.DefaultPath()
	}

	cfg, err := config.Load(a.v, cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error initializing logging: %v\n", err)
	}
	a.logger = logging.Logger
	return nil
}

// loadGraph builds the conversion graph from the configured definitions
func (a *app) loadGraph() (*conversion.Graph, error) {
	var format catalog.Format
	if a.cfg.Definitions.Format != "" {
		f, err := catalog.ParseFormat(a.cfg.Definitions.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var opts []conversion.Option
	if a.cfg.Cache.Enabled {
		opts = append(opts, conversion.WithPathCache(a.cfg.Cache.TTL()))
	}

	g, err := catalog.LoadGraph(a.cfg.Definitions.Path, format, a.logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading definitions: %w", err)
	}
	return g, nil
}

// versionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "conversion-wiz version %s\n", version)
		},
	}
}
