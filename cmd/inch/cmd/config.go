package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the effective configuration after file, environment and flag overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts)
		},
	}
}

func runConfig(cmd *cobra.Command, opts *options) error {
	cfg := opts.app.Config
	w := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(w, map[string]any{
			"source":       cfg.Source,
			"backend":      cfg.Backend,
			"precision":    cfg.Precision,
			"places":       cfg.Places,
			"resolution":   cfg.Resolution,
			"default_unit": cfg.DefaultUnit,
			"color":        cfg.Color,
			"debounce":     cfg.Watch.Debounce.String(),
		})
	}

	color := opts.useColor(w)
	source := cfg.Source
	if source == "" {
		source = "(built-in defaults)"
	}

	fmt.Fprintf(w, "%s⚡ inch config%s\n", boldIf(color), resetIf(color))
	fmt.Fprintf(w, "  Source:      %s\n", source)
	fmt.Fprintf(w, "  Backend:     %s\n", cfg.Backend)
	fmt.Fprintf(w, "  Precision:   %d digits\n", cfg.Precision)
	fmt.Fprintf(w, "  Places:      %d\n", cfg.Places)
	fmt.Fprintf(w, "  Resolution:  1/%d in\n", cfg.Resolution)
	fmt.Fprintf(w, "  Unit:        %s\n", cfg.DefaultUnit)
	fmt.Fprintf(w, "  Color:       %s\n", cfg.Color)
	fmt.Fprintf(w, "  Debounce:    %s\n", cfg.Watch.Debounce)
	return nil
}
