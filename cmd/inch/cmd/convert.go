package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/corey/inch/internal/app"
	"github.com/corey/inch/internal/domain/input"
	"github.com/corey/inch/internal/domain/measure"
	"github.com/spf13/cobra"
)

func newMillimetersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "mm [value...]",
		Aliases: []string{"millimeters"},
		Short:   "Convert millimeters into inches",
		Long: "Prints each millimeter value as an inch fraction (nearest 1/128), a decimal\n" +
			"and, above one inch, a mixed number. With no arguments, reads one value per\n" +
			"line from stdin. Values that are not numbers are skipped.",
		Example: "  inch mm 50\n  inch mm 12.7 25.4 3.175\n  cut -f2 parts.tsv | inch mm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args, measure.Millimeter)
		},
	}
}

func newInchesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "in [value...]",
		Aliases: []string{"inches"},
		Short:   "Convert inches into millimeters",
		Long: "Prints each inch value in millimeters. With no arguments, reads one value\n" +
			"per line from stdin. Values that are not numbers are skipped.",
		Example: "  inch in 1\n  inch in 0.5 1.25",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args, measure.Inch)
		},
	}
}

func runConvert(cmd *cobra.Command, opts *options, args []string, unit measure.Unit) error {
	values := args
	if len(values) == 0 {
		in := cmd.InOrStdin()
		if !isPipe(in) {
			return errors.New("no values: pass them as arguments or pipe them on stdin")
		}
		var err error
		if values, err = readValues(in); err != nil {
			return err
		}
	}

	entries := make([]input.Entry, 0, len(values))
	for _, v := range values {
		e, ok := input.ParseValue(v, unit)
		if !ok {
			opts.log.Debug("input suppressed", "value", v)
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return exitCode(1)
	}

	outputs, err := opts.app.ConvertAll(entries)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(w, outputs)
	}

	color := opts.useColor(w)
	if unit == measure.Millimeter {
		fmt.Fprint(w, formatInches(outputs, color))
	} else {
		fmt.Fprint(w, formatMillimeters(outputs, color))
	}
	return nil
}

// readValues returns the lines of r, one value per line.
func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return values, nil
}

// writeJSON writes v as one JSON document.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitByUnit separates mm-input outputs from inch-input outputs.
func splitByUnit(outputs []app.Output) (mm, in []app.Output) {
	for _, o := range outputs {
		if o.Inches != nil {
			mm = append(mm, o)
		} else {
			in = append(in, o)
		}
	}
	return mm, in
}
