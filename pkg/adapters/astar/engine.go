package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/ports"
)

// Connectivity selects the neighbourhood used by the search.
type Connectivity int

const (
	// Conn4 moves up, down, left and right.
	Conn4 Connectivity = 4
	// Conn8 also moves diagonally, but never cuts a blocked corner.
	Conn8 Connectivity = 8
)

// ParseConnectivity validates a neighbourhood size read from configuration.
func ParseConnectivity(n int) (Connectivity, error) {
	switch Connectivity(n) {
	case Conn4, Conn8:
		return Connectivity(n), nil
	}
	return 0, fmt.Errorf("unsupported connectivity %d (want 4 or 8)", n)
}

// Algorithm selects the search run between consecutive waypoints.
type Algorithm string

const (
	// AlgorithmAStar is the built-in A* with a grid heuristic and stable tie-breaking.
	AlgorithmAStar Algorithm = "astar"
	// AlgorithmDijkstra builds a lvlath graph of the board and runs its Dijkstra.
	// Costs match A*; among equal-cost routes the one returned is unspecified.
	AlgorithmDijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm validates an algorithm name read from configuration.
// The empty name selects A*.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "", AlgorithmAStar:
		return AlgorithmAStar, nil
	case AlgorithmDijkstra:
		return AlgorithmDijkstra, nil
	}
	return "", fmt.Errorf("unsupported algorithm %q (want astar or dijkstra)", name)
}

type role uint8

const (
	roleOpen role = iota
	roleWaypoint
	roleObstacle
	roleInaccessible
	roleRisky
)

type cell struct {
	role   role
	weight int
}

func (c cell) passable() bool {
	return c.role != roleObstacle && c.role != roleInaccessible
}

// Engine implements ports.PathEngine.
// It is not safe for concurrent use; the session serializes access.
type Engine struct {
	width     int
	height    int
	riskFloor int
	conn      Connectivity
	algorithm Algorithm
	logger    *slog.Logger

	board []cell
	order []domain.Key
	paths []domain.Path
}

// Option configures an Engine.
type Option func(*Engine)

// WithConnectivity selects 4- or 8-connected movement.
func WithConnectivity(c Connectivity) Option {
	return func(e *Engine) {
		e.conn = c
	}
}

// WithAlgorithm selects the route search. The default is AlgorithmAStar.
func WithAlgorithm(a Algorithm) Option {
	return func(e *Engine) {
		e.algorithm = a
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an empty board of maxX by maxY cells.
func New(maxX, maxY, riskFloor int, opts ...Option) (*Engine, error) {
	if _, err := domain.NewGrid(maxX, maxY); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if err := domain.ValidateWeight(riskFloor); err != nil {
		return nil, fmt.Errorf("risk floor: %w", err)
	}

	e := &Engine{
		width:     maxX,
		height:    maxY,
		riskFloor: riskFloor,
		conn:      Conn4,
		algorithm: AlgorithmAStar,
		logger:    logging.NewNop(),
		board:     make([]cell, maxX*maxY),
	}
	for _, opt := range opts {
		opt(e)
	}
	if _, err := ParseConnectivity(int(e.conn)); err != nil {
		return nil, err
	}
	if _, err := ParseAlgorithm(string(e.algorithm)); err != nil {
		return nil, err
	}
	return e, nil
}

// Factory returns a ports.EngineFactory that builds engines with opts.
func Factory(opts ...Option) ports.EngineFactory {
	return func(maxX, maxY, riskFloor int) (ports.PathEngine, error) {
		return New(maxX, maxY, riskFloor, opts...)
	}
}

// KeyOf returns the board index of (x, y).
func (e *Engine) KeyOf(x, y int) domain.Key {
	return domain.Key(y*e.width + x)
}

func (e *Engine) coordOf(k domain.Key) (int, int) {
	return int(k) % e.width, int(k) / e.width
}

func (e *Engine) locate(x, y int) (domain.Key, error) {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return 0, fmt.Errorf("(%d,%d) on %dx%d board: %w", x, y, e.width, e.height, domain.ErrOutOfBounds)
	}
	return e.KeyOf(x, y), nil
}

// RegisterWaypoint adds (x, y) to the visiting order.
func (e *Engine) RegisterWaypoint(x, y int) error {
	return e.register(x, y, cell{role: roleWaypoint})
}

// RegisterObstacle blocks (x, y).
func (e *Engine) RegisterObstacle(x, y int) error {
	return e.register(x, y, cell{role: roleObstacle})
}

// RegisterInaccessible blocks (x, y).
func (e *Engine) RegisterInaccessible(x, y int) error {
	return e.register(x, y, cell{role: roleInaccessible})
}

// RegisterRisky makes entering (x, y) cost weight.
func (e *Engine) RegisterRisky(x, y, weight int) error {
	if err := domain.ValidateWeight(weight); err != nil {
		return fmt.Errorf("(%d,%d): %w", x, y, err)
	}
	return e.register(x, y, cell{role: roleRisky, weight: weight})
}

func (e *Engine) register(x, y int, c cell) error {
	k, err := e.locate(x, y)
	if err != nil {
		return err
	}

	prev := e.board[k].role
	switch {
	case prev == roleWaypoint && c.role != roleWaypoint:
		e.order = slices.DeleteFunc(e.order, func(w domain.Key) bool { return w == k })
	case prev != roleWaypoint && c.role == roleWaypoint:
		e.order = append(e.order, k)
	}
	e.board[k] = c
	return nil
}

// Compute searches a route for every consecutive waypoint pair.
// An unreachable pair yields a Path with Found == false.
func (e *Engine) Compute() error {
	start := time.Now()
	if len(e.order) < 2 {
		e.paths = nil
		return nil
	}

	r, err := e.newRouter()
	if err != nil {
		return err
	}
	paths := make([]domain.Path, 0, len(e.order)-1)
	for i := 0; i+1 < len(e.order); i++ {
		from, to := e.order[i], e.order[i+1]
		p, err := r.route(from, to)
		switch {
		case errors.Is(err, domain.ErrUnreachable):
			e.logger.Debug("no route", "from", from, "to", to, "err", err)
		case err != nil:
			return err
		}
		paths = append(paths, p)
	}
	e.paths = paths

	e.logger.Debug("routes computed",
		"algorithm", e.algorithm,
		"waypoints", len(e.order),
		"pairs", len(paths),
		"duration", time.Since(start),
	)
	return nil
}

type router interface {
	route(from, to domain.Key) (domain.Path, error)
}

func (e *Engine) newRouter() (router, error) {
	if e.algorithm == AlgorithmDijkstra {
		g, err := newGraphSearch(e)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return newSearch(e), nil
}

// Paths returns a copy of the last computed routes.
func (e *Engine) Paths() []domain.Path {
	return domain.ResultSet(e.paths).Clone()
}
