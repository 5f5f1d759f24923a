package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/waymark/internal/presentation/tui"
	"github.com/aretw0/waymark/pkg/observability"
	"github.com/aretw0/waymark/pkg/scenario"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/muesli/termenv"
)

// PlayOptions configures a headless scenario replay.
type PlayOptions struct {
	GlobalOptions
	Path    string
	Metrics bool
	Watch   bool
}

// Play replays the scenario at opts.Path and prints the final grid and
// route report to out. Rejected steps and metrics go to errOut.
// A failed expectation is returned as an error.
func Play(ctx context.Context, opts PlayOptions, out, errOut io.Writer) error {
	if opts.Watch {
		return WatchScenario(ctx, opts, out, errOut)
	}
	return playOnce(ctx, opts, out, errOut)
}

func playOnce(ctx context.Context, opts PlayOptions, out, errOut io.Writer) error {
	cfg, err := resolveConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}
	logger := createLogger(cfg)

	sc, err := scenario.Load(opts.Path)
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
	}

	s, err := createSession(cfg, logger, metrics, sc.Grid)
	if err != nil {
		return err
	}

	rep, err := sc.Replay(ctx, s)
	if err != nil {
		return err
	}
	for _, rej := range rep.Rejected {
		fmt.Fprintf(errOut, "step %d rejected: %v\n", rej.Step, rej.Err)
	}

	profile := colorProfile(cfg.Render.Color, out)
	if err := printOutcome(out, sc, s, rep, profile); err != nil {
		return err
	}

	if metrics != nil {
		if err := metrics.WriteText(errOut); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return sc.Check(s.Results())
}

func printOutcome(out io.Writer, sc *scenario.Scenario, s *session.Session, rep *scenario.Report, profile termenv.Profile) error {
	title := sc.Name
	if title == "" {
		title = "scenario"
	}
	fmt.Fprintf(out, "%s: %d steps applied, %d rejected\n\n", title, rep.Applied, len(rep.Rejected))

	p := s.Projection()
	if err := tui.NewGridRenderer(profile).Render(out, p); err != nil {
		return err
	}
	fmt.Fprintln(out)

	var render func(string) (string, error)
	if profile != termenv.Ascii {
		render = tui.NewRenderer()
	}
	return tui.NewReportRenderer(render)(out, p)
}
