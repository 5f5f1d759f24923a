package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/waymark/internal/config"
	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/observability"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/session"
)

// createEngineFactory builds the path engine factory described by cfg.
func createEngineFactory(cfg config.Config, logger *slog.Logger) (ports.EngineFactory, error) {
	conn, err := astar.ParseConnectivity(cfg.Engine.Connectivity)
	if err != nil {
		return nil, err
	}
	algo, err := astar.ParseAlgorithm(cfg.Engine.Algorithm)
	if err != nil {
		return nil, err
	}
	return astar.Factory(
		astar.WithConnectivity(conn),
		astar.WithAlgorithm(algo),
		astar.WithLogger(logger),
	), nil
}

// createSession initializes a session with standard CLI conventions.
// grid overrides the configured dimensions when non-nil.
func createSession(cfg config.Config, logger *slog.Logger, metrics *observability.Metrics, grid *domain.Grid) (*session.Session, error) {
	factory, err := createEngineFactory(cfg, logger)
	if err != nil {
		return nil, err
	}

	width, height := cfg.Grid.Width, cfg.Grid.Height
	if grid != nil {
		width, height = grid.Width, grid.Height
	}

	hooks := observability.LogHooks(logger)
	if metrics != nil {
		hooks = observability.Combine(hooks, metrics.Hooks())
	}

	s, err := session.New(
		session.WithGrid(width, height),
		session.WithEngineFactory(factory),
		session.WithLogger(logger),
		session.WithHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing session: %w", err)
	}
	return s, nil
}
