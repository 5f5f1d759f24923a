package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/waymark/internal/presentation/tui"
	"github.com/aretw0/waymark/pkg/runner"
	"github.com/muesli/termenv"
)

// RunSession drives a session from line commands (text or NDJSON).
func RunSession(opts RunOptions, in io.Reader, out io.Writer) error {
	cfg, err := resolveConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}
	logger := createLogger(cfg)

	s, err := createSession(cfg, logger, nil, nil)
	if err != nil {
		return err
	}

	quiet := opts.JSON || opts.Headless
	profile := colorProfile(cfg.Render.Color, out)
	if !quiet {
		tui.PrintBanner(out, profile)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	handler := createHandler(opts, in, out, profile)
	defer handler.Close()

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless),
		runner.WithInputHandler(handler),
	)
	runErr := r.Run(sigCtx, s)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(out, runErr, quiet, sigCtx.Signal())
	return handleExecutionError(runErr)
}

// RunEditor starts the interactive bubbletea editor.
func RunEditor(opts RunOptions) error {
	cfg, err := resolveConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}
	// Only errors are logged while the editor owns the terminal.
	if cfg.Log.Level != "debug" {
		cfg.Log.Level = "error"
	}
	logger := createLogger(cfg)

	s, err := createSession(cfg, logger, nil, nil)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err = tui.RunEditor(sigCtx, s)
	if err != nil && !isInterrupted(err) {
		return err
	}
	if sig := sigCtx.Signal(); sig != nil {
		fmt.Fprintln(os.Stdout)
		printSystemMessage(os.Stdout, "Interrupted.")
	}
	return nil
}

type closingHandler interface {
	runner.IOHandler
	io.Closer
}

// createHandler picks the IO strategy for the Runner.
func createHandler(opts RunOptions, in io.Reader, out io.Writer, profile termenv.Profile) closingHandler {
	switch {
	case opts.JSON:
		return runner.NewJSONHandler(in, out)
	case profile == termenv.Ascii:
		return runner.NewTextHandler(in, out, runner.WithPrompt(!opts.Headless))
	default:
		return runner.NewTextHandler(in, out,
			runner.WithPrompt(!opts.Headless),
			runner.WithTextHandlerGrid(tui.NewGridRenderer(profile).Render),
			runner.WithTextHandlerReport(tui.NewReportRenderer(tui.NewRenderer())),
		)
	}
}
