// inch converts lengths between millimeters and inches.
// Decimal, nearest-1/128 fraction and mixed-number output, no floats involved.
package main

import (
	"fmt"
	"os"

	"github.com/corey/inch/cmd/inch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		code, silent := cmd.ExitCode(err)
		if !silent {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}
