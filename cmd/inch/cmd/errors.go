package cmd

import (
	"errors"
	"fmt"
)

// exitCode is returned by a command that has nothing to print and only needs
// to signal a status: 1 means every input was suppressed as not-a-number,
// like grep's "no match".
type exitCode int

func (e exitCode) Error() string {
	if e == 1 {
		return "no valid input"
	}
	return fmt.Sprintf("exit status %d", int(e))
}

// ExitCode maps a command error to a process exit status. silent reports
// whether the error should be printed: exitCode errors are not.
func ExitCode(err error) (code int, silent bool) {
	if err == nil {
		return 0, true
	}
	var ec exitCode
	if errors.As(err, &ec) {
		return int(ec), true
	}
	return 2, false
}
