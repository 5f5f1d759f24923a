package cli

import (
	"os"

	"golang.org/x/term"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	GlobalOptions
	Headless bool
	JSON     bool
	// Plain forces the line-oriented text loop even on a terminal.
	Plain bool
}

// Execute handles the 'run' command logic, dispatching to the editor or
// the command loop.
func Execute(opts RunOptions) error {
	if !opts.JSON && !opts.Headless && !opts.Plain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return RunEditor(opts)
	}
	return RunSession(opts, os.Stdin, os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
