package cli

import (
	"errors"
	"fmt"
	"io"
)

// HintError pairs an error with a suggestion for the user.
type HintError struct {
	Err  error
	Hint string
}

func (e *HintError) Error() string {
	return e.Err.Error()
}

func (e *HintError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func printError(out io.Writer, err error) {
	p := newPalette(out)
	fmt.Fprintf(out, "%s %v\n", p.error("Error:"), err)

	var hint *HintError
	if errors.As(err, &hint) && hint.Hint != "" {
		fmt.Fprintf(out, "%s %s\n", p.muted("Hint:"), hint.Hint)
	}
}
