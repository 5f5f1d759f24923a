package runner

import (
	"context"

	"github.com/aretw0/waymark/pkg/domain"
)

// View names a read-only display request.
type View string

const (
	ViewNone  View = ""
	ViewGrid  View = "grid"
	ViewPaths View = "paths"
	ViewHelp  View = "help"
)

// Command is one parsed line of input.
// Exactly one of Intent, View or Quit is meaningful.
type Command struct {
	Intent *domain.Intent
	View   View
	Quit   bool

	// Err is a parse error. The runner reports it without touching the session,
	// except for a malformed weight, which also cancels the pending placement.
	Err error
}

// Outcome is what the runner hands back after a command.
type Outcome struct {
	Command Command
	Err     error
	Before  *domain.Projection
	After   domain.Projection
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text and JSON modes.
type IOHandler interface {
	// Input reads the next command. io.EOF ends the loop.
	Input(ctx context.Context) (Command, error)

	// Output presents the outcome of a command.
	// Before is nil on the very first call, which shows the initial board.
	Output(ctx context.Context, out Outcome) error
}
