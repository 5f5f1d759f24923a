package ports

import (
	"github.com/aretw0/waymark/pkg/domain"
)

// PathEngine is the narrow contract the session drives.
//
// Registering a coordinate under a new role supersedes its previous role.
// Out-of-grid coordinates return an error wrapping domain.ErrOutOfBounds and
// leave the board unchanged.
type PathEngine interface {
	// RegisterWaypoint adds a cell to visit. Waypoints are visited in
	// registration order; re-registering an existing waypoint keeps its place.
	RegisterWaypoint(x, y int) error

	// RegisterObstacle marks a cell as impassable.
	RegisterObstacle(x, y int) error

	// RegisterInaccessible marks a cell as impassable. It is kept apart from
	// obstacles for display only.
	RegisterInaccessible(x, y int) error

	// RegisterRisky marks a cell as traversable at cost weight.
	// Weights below 1 return an error wrapping domain.ErrInvalidWeight.
	RegisterRisky(x, y, weight int) error

	// Compute runs the search once. With fewer than two waypoints it produces
	// an empty result. Unreachable pairs produce Found == false entries.
	Compute() error

	// Paths returns the result of the most recent Compute.
	Paths() []domain.Path

	// KeyOf returns the engine's key for (x, y). It must agree with domain.Grid.KeyOf.
	KeyOf(x, y int) domain.Key
}

// EngineFactory creates a fresh engine board of maxX by maxY cells.
// riskFloor is the traversal cost of cells that carry no risk.
type EngineFactory func(maxX, maxY, riskFloor int) (PathEngine, error)
