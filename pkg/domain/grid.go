package domain

import "fmt"

// Defaults of a fresh session.
const (
	DefaultWidth  = 10
	DefaultHeight = 10

	// MaxDimension bounds both width and height.
	MaxDimension = 99

	// DefaultRiskFloor is the traversal cost of a cell that carries no risk.
	DefaultRiskFloor = 1
)

// Coord addresses a single cell. X grows to the right, Y grows downwards.
type Coord struct {
	X int `json:"x" yaml:"x" mapstructure:"x"`
	Y int `json:"y" yaml:"y" mapstructure:"y"`
}

// Pt is a shorthand constructor for Coord.
func Pt(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Key is the canonical identifier of a cell for a given grid size.
// It is shared by the cell registry, the path engine and the projection.
type Key int

// Grid holds the board dimensions.
type Grid struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// NewGrid validates the dimensions and returns a Grid.
// Both must lie in [1, MaxDimension].
func NewGrid(width, height int) (Grid, error) {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CheckBounds returns an error wrapping ErrOutOfBounds when c is outside the grid.
func (g Grid) CheckBounds(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return nil
}

// KeyOf maps c to its row-major key: y*Width + x.
// Injective for every coordinate inside the grid.
func (g Grid) KeyOf(c Coord) Key {
	return Key(c.Y*g.Width + c.X)
}

// CoordOf is the inverse of KeyOf.
func (g Grid) CoordOf(k Key) Coord {
	return Coord{X: int(k) % g.Width, Y: int(k) / g.Width}
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
