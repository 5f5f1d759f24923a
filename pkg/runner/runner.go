package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
)

// Runner drives a session from an IOHandler.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// Headless suppresses the initial board output.
	Headless bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// Run processes commands until quit, end of input or cancellation.
// Rejected commands are reported to the handler and do not stop the loop.
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	if !r.Headless {
		if err := r.Handler.Output(ctx, Outcome{After: s.Projection()}); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	for {
		cmd, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}
		if cmd.Quit {
			r.Logger.Debug("quit requested", "session_id", s.ID())
			return nil
		}

		out := r.step(s, cmd)
		if err := r.Handler.Output(ctx, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

func (r *Runner) step(s *session.Session, cmd Command) Outcome {
	before := s.Projection()
	out := Outcome{Command: cmd, Before: &before}

	switch {
	case cmd.Err != nil:
		if errors.Is(cmd.Err, domain.ErrInvalidWeight) {
			s.CancelPending()
		}
		out.Err = cmd.Err
	case cmd.Intent != nil:
		out.Err = s.Apply(*cmd.Intent)
	}
	if out.Err != nil {
		r.Logger.Debug("command rejected", "session_id", s.ID(), "err", out.Err)
	}

	out.After = s.Projection()
	return out
}
