package domain

import (
	"reflect"
)

// ProjectionDiff represents the changes between two projections.
// It is designed to be serialized to JSON for partial updates on the client.
type ProjectionDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	// Grid is set when the board was resized; Cells then holds every cell.
	Grid *Grid `json:"grid,omitempty"`

	Mode     *Mode `json:"mode,omitempty"`
	Eligible *bool `json:"eligible,omitempty"`

	// PendingChanged is true when the pending risky placement was set or cleared.
	// Pending carries the new value (nil when cleared).
	PendingChanged bool   `json:"pending_changed,omitempty"`
	Pending        *Coord `json:"pending,omitempty"`

	// Cells contains only cells whose classification or path membership changed.
	Cells []CellView `json:"cells,omitempty"`

	// Paths is set when the result set changed. An empty, non-nil slice means cleared.
	Paths *ResultSet `json:"paths,omitempty"`
}

// Diff calculates the difference between oldP and newP.
// If oldP is nil, it returns a diff representing the entire newP (initial load).
func Diff(oldP, newP *Projection) *ProjectionDiff {
	if newP == nil {
		return nil
	}

	diff := &ProjectionDiff{
		SessionID: newP.SessionID,
	}

	resized := oldP == nil || oldP.Grid != newP.Grid
	if resized {
		g := newP.Grid
		diff.Grid = &g
	}
	if oldP == nil || oldP.Mode != newP.Mode {
		m := newP.Mode
		diff.Mode = &m
	}
	if oldP == nil || oldP.Eligible != newP.Eligible {
		e := newP.Eligible
		diff.Eligible = &e
	}
	if !samePending(oldP, newP) {
		diff.PendingChanged = true
		diff.Pending = newP.Pending
	}

	diff.Cells = diffCells(oldP, newP, resized)

	if oldP == nil || !reflect.DeepEqual(normalize(oldP.Paths), normalize(newP.Paths)) {
		paths := newP.Paths.Clone()
		if paths == nil {
			paths = ResultSet{}
		}
		if oldP != nil || len(paths) > 0 {
			diff.Paths = &paths
		}
	}

	if oldP != nil && diff.IsEmpty() {
		return nil
	}
	return diff
}

func samePending(oldP, newP *Projection) bool {
	if oldP == nil {
		return newP.Pending == nil
	}
	if oldP.Pending == nil || newP.Pending == nil {
		return oldP.Pending == nil && newP.Pending == nil
	}
	return *oldP.Pending == *newP.Pending
}

func diffCells(oldP, newP *Projection, resized bool) []CellView {
	if resized {
		return append([]CellView(nil), newP.Cells...)
	}
	var delta []CellView
	for i, cell := range newP.Cells {
		if oldP.Cells[i] != cell {
			delta = append(delta, cell)
		}
	}
	return delta
}

func normalize(r ResultSet) ResultSet {
	if len(r) == 0 {
		return nil
	}
	return r
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *ProjectionDiff) IsEmpty() bool {
	return d.Grid == nil &&
		d.Mode == nil &&
		d.Eligible == nil &&
		!d.PendingChanged &&
		len(d.Cells) == 0 &&
		d.Paths == nil
}
