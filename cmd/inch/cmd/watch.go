package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	fsw "github.com/corey/inch/internal/adapters/fsnotify"
	"github.com/corey/inch/internal/app"
	"github.com/spf13/cobra"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <sheet>",
		Short: "Re-convert a measurement sheet every time it is saved",
		Long: "Watches a text file of measurements, one per line (\"50\", \"12.7 mm\", \"1 in\",\n" +
			"`2\"`), and prints the converted sheet whenever the file changes. Lines\n" +
			"without a unit use --unit / default_unit. Stop with Ctrl-C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, opts *options, path string) error {
	w, err := fsw.NewWatcher(opts.app.Config.Watch.Debounce, opts.log)
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	color := opts.useColor(out)
	tty := isTerminal(out)

	render := func(r *app.Report, err error) {
		if err != nil {
			fmt.Fprintf(errOut, "⚡ waiting for %s: %v\n", path, err)
			return
		}
		if opts.json {
			if err := writeJSON(out, r); err != nil {
				opts.log.Warn("write json", "err", err)
			}
			return
		}
		if tty {
			fmt.Fprint(out, clearScreen)
		}
		fmt.Fprint(out, formatReport(r, time.Now().Format("15:04:05"), color))
	}

	if err := opts.app.Watch(ctx, path, w, render); err != nil {
		return err
	}
	if !opts.json {
		fmt.Fprintln(out, "\n⚡ stopped")
	}
	return nil
}
