package domain

import (
	"fmt"
	"strings"
)

// Mode is the active edit operation. It decides what a tap does and never
// describes a cell's state.
type Mode int

const (
	ModeIdle Mode = iota
	ModePlaceWaypoint
	ModePlaceObstacle
	ModePlaceInaccessible
	ModePlaceRisky
)

// Modes lists every edit mode in menu order.
var Modes = []Mode{ModeIdle, ModePlaceWaypoint, ModePlaceObstacle, ModePlaceInaccessible, ModePlaceRisky}

var modeNames = map[Mode]string{
	ModeIdle:              "idle",
	ModePlaceWaypoint:     "waypoint",
	ModePlaceObstacle:     "obstacle",
	ModePlaceInaccessible: "inaccessible",
	ModePlaceRisky:        "risky",
}

var modeAliases = map[string]Mode{
	"stop":  ModeIdle,
	"none":  ModeIdle,
	"point": ModePlaceWaypoint,
	"wall":  ModePlaceObstacle,
	"risk":  ModePlaceRisky,
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name or alias.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode resolves a mode name or one of its aliases (case-insensitive).
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	if mode, ok := modeAliases[name]; ok {
		return mode, nil
	}
	return ModeIdle, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
