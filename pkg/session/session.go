package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/internal/runtime"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/aretw0/waymark/pkg/registry"
	"github.com/google/uuid"
)

// TapResult reports what a tap did.
type TapResult struct {
	// Placed is true when the tapped cell was reclassified.
	Placed bool
	// AwaitingWeight is true when the tap opened a risky placement that needs
	// SetRiskWeight to complete.
	AwaitingWeight bool
}

// Session is the single-writer coordinator of one grid configuration.
type Session struct {
	mu sync.Mutex

	id      string
	grid    domain.Grid
	factory ports.EngineFactory
	hooks   domain.LifecycleHooks
	logger  *slog.Logger

	engine   ports.PathEngine
	registry *registry.Registry
	machine  *runtime.Machine
	results  domain.ResultSet
	pending  *domain.Coord

	// queued hook calls, flushed by withLock once mu is released.
	queued []func()
}

// Option configures a Session.
type Option func(*Session)

// WithGrid sets the initial grid size. Invalid sizes make New fail.
func WithGrid(width, height int) Option {
	return func(s *Session) {
		s.grid = domain.Grid{Width: width, Height: height}
	}
}

// WithEngineFactory sets the factory used on start and on every reset.
func WithEngineFactory(f ports.EngineFactory) Option {
	return func(s *Session) {
		s.factory = f
	}
}

// WithLogger configures a logger for the Session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates a session on an empty grid, in Idle mode.
// An engine factory is required.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		grid:    domain.Grid{Width: domain.DefaultWidth, Height: domain.DefaultHeight},
		logger:  logging.NewNop(),
		machine: runtime.NewMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		return nil, errors.New("session: engine factory is required")
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}

	grid, err := domain.NewGrid(s.grid.Width, s.grid.Height)
	if err != nil {
		return nil, err
	}
	engine, err := s.factory(grid.Width, grid.Height, domain.DefaultRiskFloor)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s.grid = grid
	s.engine = engine
	s.registry = registry.NewRegistry(grid)
	s.logger = s.logger.With("session_id", s.id)
	s.logger.Debug("session started", "grid", grid)
	return s, nil
}

// withLock executes fn while holding the session lock, then runs the hooks
// fn queued. Hooks therefore may call back into the Session.
func (s *Session) withLock(fn func() error) error {
	var (
		err    error
		events []func()
	)
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		err = fn()
		events, s.queued = s.queued, nil
	}()
	for _, emit := range events {
		emit()
	}
	return err
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Grid returns the current grid dimensions.
func (s *Session) Grid() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Mode returns the active edit mode.
func (s *Session) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Mode()
}

// SetMode switches the edit mode and drops any pending risky placement.
func (s *Session) SetMode(mode domain.Mode) error {
	return s.withLock(func() error {
		return s.setMode(mode)
	})
}

func (s *Session) setMode(mode domain.Mode) error {
	if err := s.machine.SetMode(mode); err != nil {
		s.emitIntent(domain.IntentSetMode, domain.OutcomeRejected, err)
		return err
	}
	s.pending = nil
	s.emitIntent(domain.IntentSetMode, domain.OutcomeApplied, nil)
	s.logger.Debug("mode changed", "mode", mode)
	return nil
}

// TapCell applies the active mode to (x, y).
func (s *Session) TapCell(x, y int) (TapResult, error) {
	var res TapResult
	err := s.withLock(func() error {
		var err error
		res, err = s.tap(domain.Pt(x, y))
		return err
	})
	return res, err
}

func (s *Session) tap(c domain.Coord) (TapResult, error) {
	if err := s.grid.CheckBounds(c); err != nil {
		s.emitIntent(domain.IntentTap, domain.OutcomeRejected, err)
		return TapResult{}, err
	}

	eff := s.machine.Dispatch(c)
	switch eff.Kind {
	case runtime.EffectPlace:
		if err := s.place(c, eff.Class); err != nil {
			s.emitIntent(domain.IntentTap, domain.OutcomeRejected, err)
			return TapResult{}, err
		}
		s.emitIntent(domain.IntentTap, domain.OutcomeApplied, nil)
		s.logger.Debug("cell placed", "cell", c, "class", eff.Class)
		return TapResult{Placed: true}, nil
	case runtime.EffectAwaitWeight:
		pending := c
		s.pending = &pending
		s.emitIntent(domain.IntentTap, domain.OutcomeDeferred, nil)
		s.logger.Debug("awaiting risk weight", "cell", c)
		return TapResult{AwaitingWeight: true}, nil
	}

	s.emitIntent(domain.IntentTap, domain.OutcomeIgnored, nil)
	return TapResult{}, nil
}

// SetRiskWeight places a risky cell of the given weight at c and clears the
// pending placement. It also works without a prior tap.
// An invalid weight drops the pending placement and leaves the cell unchanged.
func (s *Session) SetRiskWeight(c domain.Coord, weight int) error {
	return s.withLock(func() error {
		return s.setWeight(c, weight)
	})
}

func (s *Session) setWeight(c domain.Coord, weight int) error {
	if err := s.grid.CheckBounds(c); err != nil {
		s.emitIntent(domain.IntentSetWeight, domain.OutcomeRejected, err)
		return err
	}
	if err := domain.ValidateWeight(weight); err != nil {
		s.pending = nil
		s.emitIntent(domain.IntentSetWeight, domain.OutcomeRejected, err)
		return fmt.Errorf("weight for %s: %w", c, err)
	}

	if err := s.place(c, domain.Risky(weight)); err != nil {
		s.emitIntent(domain.IntentSetWeight, domain.OutcomeRejected, err)
		return err
	}
	s.pending = nil
	s.emitIntent(domain.IntentSetWeight, domain.OutcomeApplied, nil)
	s.logger.Debug("risky cell placed", "cell", c, "weight", weight)
	return nil
}

// PendingRisky returns the cell waiting for a weight, if any.
func (s *Session) PendingRisky() (domain.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return domain.Coord{}, false
	}
	return *s.pending, true
}

// CancelPending drops the pending risky placement. The cell keeps its
// current classification.
func (s *Session) CancelPending() {
	_ = s.withLock(func() error {
		if s.pending == nil {
			return nil
		}
		s.pending = nil
		s.emitIntent(domain.IntentSetWeight, domain.OutcomeRejected, domain.ErrInvalidWeight)
		return nil
	})
}

// place writes class at c into the engine, then into the registry.
// Any successful mutation invalidates the current results.
func (s *Session) place(c domain.Coord, class domain.Classification) error {
	var err error
	switch class.Kind {
	case domain.KindWaypoint:
		err = s.engine.RegisterWaypoint(c.X, c.Y)
	case domain.KindObstacle:
		err = s.engine.RegisterObstacle(c.X, c.Y)
	case domain.KindInaccessible:
		err = s.engine.RegisterInaccessible(c.X, c.Y)
	case domain.KindRisky:
		err = s.engine.RegisterRisky(c.X, c.Y, class.Weight)
	default:
		return fmt.Errorf("cannot place %s at %s", class, c)
	}
	if err != nil {
		return fmt.Errorf("engine rejected %s at %s: %w", class, c, err)
	}

	s.registry.Set(c, class)
	s.results = nil
	return nil
}

// Eligible reports whether at least two waypoints are registered.
func (s *Session) Eligible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligible()
}

func (s *Session) eligible() bool {
	return s.registry.Count(domain.KindWaypoint) >= 2
}

// Compute asks the engine for routes between the waypoints and replaces the
// results. With fewer than two waypoints it does nothing and returns nil.
func (s *Session) Compute() error {
	return s.withLock(s.compute)
}

func (s *Session) compute() error {
	if !s.eligible() {
		s.emitIntent(domain.IntentCompute, domain.OutcomeIgnored, domain.ErrNotEligible)
		s.logger.Info("compute skipped", "waypoints", s.registry.Count(domain.KindWaypoint))
		return nil
	}

	start := time.Now()
	if err := s.engine.Compute(); err != nil {
		err = fmt.Errorf("engine compute failed: %w", err)
		s.emitIntent(domain.IntentCompute, domain.OutcomeRejected, err)
		return err
	}
	elapsed := time.Since(start)

	s.results = domain.ResultSet(s.engine.Paths())
	s.machine.Reset()
	s.emitIntent(domain.IntentCompute, domain.OutcomeApplied, nil)

	ev := &domain.ComputeEvent{
		Timestamp:   time.Now(),
		SessionID:   s.id,
		Waypoints:   s.registry.Count(domain.KindWaypoint),
		Paths:       len(s.results),
		Unreachable: s.results.Unreachable(),
		Duration:    elapsed,
	}
	if s.hooks.OnCompute != nil {
		s.queue(func() { s.hooks.OnCompute(ev) })
	}
	s.logger.Info("routes computed",
		"waypoints", ev.Waypoints,
		"paths", ev.Paths,
		"unreachable", ev.Unreachable,
		"duration", elapsed,
	)
	return nil
}

// Reset discards every cell, result and pending placement, creates a fresh
// engine and returns to Idle. dims optionally holds a new width and height;
// an omitted or zero value keeps the current one.
func (s *Session) Reset(dims ...int) error {
	return s.withLock(func() error {
		return s.reset(dims...)
	})
}

func (s *Session) reset(dims ...int) error {
	grid, err := s.resize(dims)
	if err != nil {
		s.emitIntent(domain.IntentReset, domain.OutcomeRejected, err)
		return err
	}
	engine, err := s.factory(grid.Width, grid.Height, domain.DefaultRiskFloor)
	if err != nil {
		err = fmt.Errorf("failed to create engine: %w", err)
		s.emitIntent(domain.IntentReset, domain.OutcomeRejected, err)
		return err
	}

	s.grid = grid
	s.engine = engine
	s.registry = registry.NewRegistry(grid)
	s.machine.Reset()
	s.results = nil
	s.pending = nil

	s.emitIntent(domain.IntentReset, domain.OutcomeApplied, nil)
	if s.hooks.OnReset != nil {
		ev := &domain.ResetEvent{Timestamp: time.Now(), SessionID: s.id, Grid: grid}
		s.queue(func() { s.hooks.OnReset(ev) })
	}
	s.logger.Info("session reset", "grid", grid)
	return nil
}

func (s *Session) resize(dims []int) (domain.Grid, error) {
	if len(dims) > 2 {
		return domain.Grid{}, fmt.Errorf("reset takes at most two dimensions, got %d: %w", len(dims), domain.ErrInvalidDimensions)
	}
	width, height := s.grid.Width, s.grid.Height
	if len(dims) > 0 && dims[0] != 0 {
		width = dims[0]
	}
	if len(dims) > 1 && dims[1] != 0 {
		height = dims[1]
	}
	return domain.NewGrid(width, height)
}

// Results returns a copy of the current results.
func (s *Session) Results() domain.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results.Clone()
}

// Projection returns the read-only view of the whole grid.
func (s *Session) Projection() domain.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projection()
}

func (s *Session) projection() domain.Projection {
	members := s.results.Members()
	cells := make([]domain.CellView, s.grid.Size())
	for i := range cells {
		k := domain.Key(i)
		c := s.grid.CoordOf(k)
		_, onPath := members[k]
		cells[i] = domain.CellView{
			Coord:  c,
			Key:    k,
			Class:  s.registry.Classify(c),
			OnPath: onPath,
		}
	}

	p := domain.Projection{
		SessionID: s.id,
		Grid:      s.grid,
		Mode:      s.machine.Mode(),
		Eligible:  s.eligible(),
		Cells:     cells,
		Paths:     s.results.Clone(),
	}
	if s.pending != nil {
		pending := *s.pending
		p.Pending = &pending
	}
	return p
}

// Apply dispatches a serialized intent to the matching operation.
func (s *Session) Apply(in domain.Intent) error {
	return s.withLock(func() error {
		return s.apply(in)
	})
}

func (s *Session) apply(in domain.Intent) error {
	switch in.Kind {
	case domain.IntentSetMode:
		mode, err := domain.ParseMode(in.Mode)
		if err != nil {
			s.emitIntent(domain.IntentSetMode, domain.OutcomeRejected, err)
			return err
		}
		return s.setMode(mode)
	case domain.IntentTap:
		if in.Cell == nil {
			err := fmt.Errorf("tap without a cell: %w", domain.ErrOutOfBounds)
			s.emitIntent(domain.IntentTap, domain.OutcomeRejected, err)
			return err
		}
		_, err := s.tap(*in.Cell)
		return err
	case domain.IntentSetWeight:
		c := in.Cell
		if c == nil {
			c = s.pending
		}
		if c == nil {
			s.emitIntent(domain.IntentSetWeight, domain.OutcomeRejected, domain.ErrNothingPending)
			return domain.ErrNothingPending
		}
		return s.setWeight(*c, in.Weight)
	case domain.IntentCompute:
		return s.compute()
	case domain.IntentReset:
		return s.reset(in.Width, in.Height)
	}
	return fmt.Errorf("%q: %w", in.Kind, domain.ErrUnknownIntent)
}

func (s *Session) emitIntent(kind domain.IntentKind, outcome string, err error) {
	if s.hooks.OnIntent == nil {
		return
	}
	ev := &domain.IntentEvent{
		Timestamp: time.Now(),
		SessionID: s.id,
		Intent:    kind,
		Outcome:   outcome,
		Err:       err,
	}
	s.queue(func() { s.hooks.OnIntent(ev) })
}

// queue defers a hook call until the lock is released. Callers hold mu.
func (s *Session) queue(emit func()) {
	s.queued = append(s.queued, emit)
}

// ParseWeight reads a risk weight typed by the user.
// Non-integers and values below 1 wrap domain.ErrInvalidWeight.
func ParseWeight(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, domain.ErrInvalidWeight)
	}
	if err := domain.ValidateWeight(n); err != nil {
		return 0, err
	}
	return n, nil
}
