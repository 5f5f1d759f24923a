package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/scenario"
)

// ValidateScenario walks the steps of sc without running an engine and
// reports every step a session would reject or ignore. grid is the board
// used when the scenario does not set one.
func ValidateScenario(sc *scenario.Scenario, grid domain.Grid) error {
	if sc.Grid != nil {
		grid = *sc.Grid
	}
	w := walker{grid: grid, cells: make(map[domain.Coord]domain.CellKind)}

	var errors []string
	for i, in := range sc.Steps {
		if err := w.step(in); err != nil {
			errors = append(errors, fmt.Sprintf("step %d (%s): %v", i+1, in.Kind, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

type walker struct {
	grid    domain.Grid
	mode    domain.Mode
	pending *domain.Coord
	cells   map[domain.Coord]domain.CellKind
}

var modeKinds = map[domain.Mode]domain.CellKind{
	domain.ModePlaceWaypoint:     domain.KindWaypoint,
	domain.ModePlaceObstacle:     domain.KindObstacle,
	domain.ModePlaceInaccessible: domain.KindInaccessible,
	domain.ModePlaceRisky:        domain.KindRisky,
}

func (w *walker) step(in domain.Intent) error {
	switch in.Kind {
	case domain.IntentSetMode:
		mode, err := domain.ParseMode(in.Mode)
		if err != nil {
			return err
		}
		w.mode, w.pending = mode, nil
	case domain.IntentTap:
		if in.Cell == nil {
			return fmt.Errorf("missing cell")
		}
		if err := w.grid.CheckBounds(*in.Cell); err != nil {
			return err
		}
		w.pending = nil
		if w.mode == domain.ModeIdle {
			return fmt.Errorf("tap on %s is ignored in idle mode", *in.Cell)
		}
		if w.mode == domain.ModePlaceRisky {
			c := *in.Cell
			w.pending = &c
			return nil
		}
		w.cells[*in.Cell] = modeKinds[w.mode]
	case domain.IntentSetWeight:
		c := in.Cell
		if c == nil {
			c = w.pending
		}
		w.pending = nil
		if c == nil {
			return domain.ErrNothingPending
		}
		if err := w.grid.CheckBounds(*c); err != nil {
			return err
		}
		if err := domain.ValidateWeight(in.Weight); err != nil {
			return err
		}
		w.cells[*c] = domain.KindRisky
	case domain.IntentCompute:
		if w.waypoints() < 2 {
			return domain.ErrNotEligible
		}
		w.mode, w.pending = domain.ModeIdle, nil
	case domain.IntentReset:
		width, height := w.grid.Width, w.grid.Height
		if in.Width != 0 {
			width = in.Width
		}
		if in.Height != 0 {
			height = in.Height
		}
		g, err := domain.NewGrid(width, height)
		if err != nil {
			return err
		}
		w.grid, w.mode, w.pending = g, domain.ModeIdle, nil
		clear(w.cells)
	default:
		return fmt.Errorf("%q: %w", in.Kind, domain.ErrUnknownIntent)
	}
	return nil
}

func (w *walker) waypoints() int {
	n := 0
	for _, k := range w.cells {
		if k == domain.KindWaypoint {
			n++
		}
	}
	return n
}
