package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/corey/inch/internal/app"
	"github.com/corey/inch/internal/config"
	"github.com/spf13/cobra"
)

// options holds the persistent flags plus the state loaded from them.
// A fresh options value backs every command tree.
type options struct {
	configPath string
	backend    string
	places     int
	resolution int64
	unit       string
	color      string
	noColor    bool
	verbose    bool
	json       bool

	getenv func(string) string
	log    *slog.Logger
	app    *app.App
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	opts := &options{getenv: os.Getenv}

	root := &cobra.Command{
		Use:   "inch",
		Short: "inch — millimeter/inch converter",
		Long: "Converts millimeters to inches (decimal, nearest 1/128 fraction, mixed number)\n" +
			"and inches to millimeters, using arbitrary-precision decimal arithmetic.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $INCH_CONFIG or ~/.config/inch/config.yaml)")
	f.StringVar(&opts.backend, "backend", config.BackendDecimal, "arithmetic backend: decimal or rat")
	f.IntVar(&opts.places, "places", 0, "digits after the decimal point (default from config, 3)")
	f.Int64Var(&opts.resolution, "resolution", 0, "finest fraction denominator, power of two (default from config, 128)")
	f.StringVar(&opts.unit, "unit", "", "unit for sheet lines without one: mm or in")
	f.StringVar(&opts.color, "color", config.ColorAuto, "colour output: auto, always or never")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colour output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of tables")

	root.AddCommand(newMillimetersCmd(opts))
	root.AddCommand(newInchesCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// load reads the config, applies flag overrides and builds the App.
func (o *options) load(cmd *cobra.Command) error {
	o.log = newLogger(cmd.ErrOrStderr(), o.verbose)

	cfg, err := config.Load(o.configPath, o.getenv)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		o.log.Debug("config loaded", "path", cfg.Source)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("places") {
		cfg.Places = o.places
	}
	if flags.Changed("resolution") {
		cfg.Resolution = o.resolution
	}
	if flags.Changed("unit") {
		cfg.DefaultUnit = o.unit
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}

	a, err := app.New(cfg, o.log)
	if err != nil {
		return err
	}
	o.app = a
	return nil
}

// useColor resolves --no-color, --color and the config against the output.
func (o *options) useColor(w io.Writer) bool {
	return resolveColor(o.app.Config.Color, o.noColor, w)
}

// newLogger returns the diagnostics logger: warnings only, or everything with -v.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
