package runtime

import (
	"fmt"

	"github.com/aretw0/waymark/pkg/domain"
)

// EffectKind tells the coordinator what a tap asks for.
type EffectKind int

const (
	// EffectNone leaves the board untouched.
	EffectNone EffectKind = iota
	// EffectPlace writes Effect.Class into the registry and the engine.
	EffectPlace
	// EffectAwaitWeight records a pending risky placement until a weight arrives.
	EffectAwaitWeight
)

func (k EffectKind) String() string {
	switch k {
	case EffectPlace:
		return "place"
	case EffectAwaitWeight:
		return "await-weight"
	}
	return "none"
}

// Effect is the outcome of dispatching a tap in a given mode.
type Effect struct {
	Kind  EffectKind
	Coord domain.Coord
	Class domain.Classification
}

// dispatch is the tap table. Modes missing from it are no-ops.
var dispatch = map[domain.Mode]func(domain.Coord) Effect{
	domain.ModePlaceWaypoint: func(c domain.Coord) Effect {
		return Effect{Kind: EffectPlace, Coord: c, Class: domain.Waypoint()}
	},
	domain.ModePlaceObstacle: func(c domain.Coord) Effect {
		return Effect{Kind: EffectPlace, Coord: c, Class: domain.Obstacle()}
	},
	domain.ModePlaceInaccessible: func(c domain.Coord) Effect {
		return Effect{Kind: EffectPlace, Coord: c, Class: domain.Inaccessible()}
	},
	domain.ModePlaceRisky: func(c domain.Coord) Effect {
		return Effect{Kind: EffectAwaitWeight, Coord: c}
	},
}

// Machine is the edit-mode state machine.
// Every mode is reachable from every other; there is no terminal state.
type Machine struct {
	mode domain.Mode
}

// NewMachine creates a machine in Idle mode.
func NewMachine() *Machine {
	return &Machine{mode: domain.ModeIdle}
}

// Mode returns the active edit mode.
func (m *Machine) Mode() domain.Mode {
	return m.mode
}

// SetMode switches the active mode. It never touches cells.
func (m *Machine) SetMode(mode domain.Mode) error {
	if mode < domain.ModeIdle || mode > domain.ModePlaceRisky {
		return fmt.Errorf("mode %d: %w", int(mode), domain.ErrUnknownMode)
	}
	m.mode = mode
	return nil
}

// Reset returns the machine to Idle.
func (m *Machine) Reset() {
	m.mode = domain.ModeIdle
}

// Dispatch resolves a tap at c under the active mode.
func (m *Machine) Dispatch(c domain.Coord) Effect {
	return Resolve(m.mode, c)
}

// Resolve looks up the effect of tapping c in mode.
func Resolve(mode domain.Mode, c domain.Coord) Effect {
	if fn, ok := dispatch[mode]; ok {
		return fn(c)
	}
	return Effect{Kind: EffectNone, Coord: c}
}
