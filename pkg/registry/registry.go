// Package registry holds the canonical record of what the user has painted.
package registry

import (
	"sort"

	"github.com/aretw0/waymark/pkg/domain"
)

// Registry maps cell keys to their classification.
// Absent keys are Empty. Bounds are the caller's responsibility.
type Registry struct {
	grid  domain.Grid
	cells map[domain.Key]domain.Classification
}

// NewRegistry creates an empty registry for the given grid.
func NewRegistry(grid domain.Grid) *Registry {
	return &Registry{
		grid:  grid,
		cells: make(map[domain.Key]domain.Classification),
	}
}

// Grid returns the grid the registry keys are derived from.
func (r *Registry) Grid() domain.Grid {
	return r.grid
}

// Classify returns the classification of c, Empty if never painted.
func (r *Registry) Classify(c domain.Coord) domain.Classification {
	return r.cells[r.grid.KeyOf(c)]
}

// Set overwrites the classification of c. Setting Empty removes the entry,
// so a cell never holds more than one classification.
func (r *Registry) Set(c domain.Coord, class domain.Classification) {
	k := r.grid.KeyOf(c)
	if class.IsEmpty() {
		delete(r.cells, k)
		return
	}
	r.cells[k] = class
}

// Clear empties the whole registry.
func (r *Registry) Clear() {
	clear(r.cells)
}

// Len returns the number of painted cells.
func (r *Registry) Len() int {
	return len(r.cells)
}

// Count returns the number of cells of the given kind.
func (r *Registry) Count(kind domain.CellKind) int {
	n := 0
	for _, class := range r.cells {
		if class.Kind == kind {
			n++
		}
	}
	return n
}

// Keys returns the painted keys in ascending order.
func (r *Registry) Keys() []domain.Key {
	keys := make([]domain.Key, 0, len(r.cells))
	for k := range r.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Snapshot returns a copy of the painted cells.
func (r *Registry) Snapshot() map[domain.Key]domain.Classification {
	out := make(map[domain.Key]domain.Classification, len(r.cells))
	for k, v := range r.cells {
		out[k] = v
	}
	return out
}
