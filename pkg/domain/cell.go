package domain

import (
	"fmt"
	"strings"
)

// CellKind is the tag of a Classification.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindWaypoint
	KindObstacle
	KindInaccessible
	KindRisky
)

var cellKindNames = map[CellKind]string{
	KindEmpty:        "empty",
	KindWaypoint:     "waypoint",
	KindObstacle:     "obstacle",
	KindInaccessible: "inaccessible",
	KindRisky:        "risky",
}

func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// MarshalText encodes the kind by name so JSON projections stay readable.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *CellKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, n := range cellKindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown cell kind %q", name)
}

// Classification is what the user painted on a cell.
// Weight is only meaningful (and always >= 1) for KindRisky.
type Classification struct {
	Kind   CellKind `json:"kind"`
	Weight int      `json:"weight,omitempty"`
}

// Empty is the classification of an unpainted cell.
func Empty() Classification { return Classification{} }

// Waypoint marks a cell the routes must connect.
func Waypoint() Classification { return Classification{Kind: KindWaypoint} }

// Obstacle marks an impassable cell.
func Obstacle() Classification { return Classification{Kind: KindObstacle} }

// Inaccessible marks an impassable cell displayed apart from obstacles.
func Inaccessible() Classification { return Classification{Kind: KindInaccessible} }

// Risky marks a traversable cell with an elevated traversal cost.
// Callers validate the weight with ValidateWeight first.
func Risky(weight int) Classification {
	return Classification{Kind: KindRisky, Weight: weight}
}

// ValidateWeight returns ErrInvalidWeight for weights below 1.
func ValidateWeight(weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, weight)
	}
	return nil
}

// IsEmpty reports whether the cell is unpainted.
func (c Classification) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// Blocks reports whether the classification is impassable for routing.
func (c Classification) Blocks() bool {
	return c.Kind == KindObstacle || c.Kind == KindInaccessible
}

func (c Classification) String() string {
	if c.Kind == KindRisky {
		return fmt.Sprintf("risky(%d)", c.Weight)
	}
	return c.Kind.String()
}
