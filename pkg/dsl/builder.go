package dsl

import (
	"fmt"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/scenario"
)

// Builder accumulates the steps of a scenario.
type Builder struct {
	sc   scenario.Scenario
	mode domain.Mode
	err  error
}

// New creates a new scenario builder.
func New(name string) *Builder {
	return &Builder{sc: scenario.Scenario{Name: name}}
}

// Describe sets the scenario description.
func (b *Builder) Describe(text string) *Builder {
	b.sc.Description = text
	return b
}

// Grid sets the board the scenario starts on.
func (b *Builder) Grid(width, height int) *Builder {
	g, err := domain.NewGrid(width, height)
	if err != nil {
		b.fail(fmt.Errorf("grid: %w", err))
		return b
	}
	b.sc.Grid = &g
	return b
}

// Mode switches the edit mode. Placement helpers call it on demand.
func (b *Builder) Mode(mode domain.Mode) *Builder {
	b.mode = mode
	b.sc.Steps = append(b.sc.Steps, domain.Intent{Kind: domain.IntentSetMode, Mode: mode.String()})
	return b
}

// Tap taps the cells in the current mode.
func (b *Builder) Tap(cells ...domain.Coord) *Builder {
	for _, c := range cells {
		b.sc.Steps = append(b.sc.Steps, domain.Intent{Kind: domain.IntentTap, Cell: &c})
	}
	return b
}

// Waypoints places waypoints in the given order.
func (b *Builder) Waypoints(cells ...domain.Coord) *Builder {
	return b.place(domain.ModePlaceWaypoint, cells)
}

// Obstacles places obstacles.
func (b *Builder) Obstacles(cells ...domain.Coord) *Builder {
	return b.place(domain.ModePlaceObstacle, cells)
}

// Inaccessible places inaccessible cells.
func (b *Builder) Inaccessible(cells ...domain.Coord) *Builder {
	return b.place(domain.ModePlaceInaccessible, cells)
}

// Risky places a risky cell and answers its weight prompt.
func (b *Builder) Risky(c domain.Coord, weight int) *Builder {
	if err := domain.ValidateWeight(weight); err != nil {
		b.fail(fmt.Errorf("risky %s: %w", c, err))
		return b
	}
	b.place(domain.ModePlaceRisky, []domain.Coord{c})
	b.sc.Steps = append(b.sc.Steps, domain.Intent{Kind: domain.IntentSetWeight, Cell: &c, Weight: weight})
	return b
}

// Compute requests a route computation.
func (b *Builder) Compute() *Builder {
	b.sc.Steps = append(b.sc.Steps, domain.Intent{Kind: domain.IntentCompute})
	b.mode = domain.ModeIdle
	return b
}

// Reset clears the board. Zero keeps the current dimension.
func (b *Builder) Reset(width, height int) *Builder {
	b.sc.Steps = append(b.sc.Steps, domain.Intent{Kind: domain.IntentReset, Width: width, Height: height})
	b.mode = domain.ModeIdle
	return b
}

// ExpectPaths sets the expected number of paths after the replay.
func (b *Builder) ExpectPaths(n int) *Builder {
	b.expect().Paths = &n
	return b
}

// ExpectUnreachable sets the expected number of unreachable pairs.
func (b *Builder) ExpectUnreachable(n int) *Builder {
	b.expect().Unreachable = &n
	return b
}

// Build returns the scenario, or the first error recorded while building.
func (b *Builder) Build() (*scenario.Scenario, error) {
	if b.err != nil {
		return nil, b.err
	}
	sc := b.sc
	sc.Steps = append([]domain.Intent(nil), b.sc.Steps...)
	return &sc, nil
}

func (b *Builder) place(mode domain.Mode, cells []domain.Coord) *Builder {
	if b.mode != mode {
		b.Mode(mode)
	}
	return b.Tap(cells...)
}

func (b *Builder) expect() *scenario.Expect {
	if b.sc.Expect == nil {
		b.sc.Expect = &scenario.Expect{}
	}
	return b.sc.Expect
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
