package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/waymark/internal/presentation/graph"
	"github.com/aretw0/waymark/pkg/scenario"
)

// GraphOptions configures the Mermaid export.
type GraphOptions struct {
	GlobalOptions
	Path      string
	Detailed  bool
	Direction string
}

// Graph replays a scenario and writes its routes as a Mermaid flowchart.
// Routes are computed first when the scenario ends without results.
func Graph(ctx context.Context, opts GraphOptions, out io.Writer) error {
	cfg, err := resolveConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}
	logger := createLogger(cfg)

	sc, err := scenario.Load(opts.Path)
	if err != nil {
		return err
	}
	s, err := createSession(cfg, logger, nil, sc.Grid)
	if err != nil {
		return err
	}
	if _, err := sc.Replay(ctx, s); err != nil {
		return err
	}
	if len(s.Results()) == 0 && s.Eligible() {
		if err := s.Compute(); err != nil {
			return fmt.Errorf("failed to compute routes: %w", err)
		}
	}

	_, err = io.WriteString(out, graph.GenerateMermaid(s.Projection(), graph.MermaidOptions{
		Detailed:  opts.Detailed,
		Direction: opts.Direction,
	}))
	return err
}
