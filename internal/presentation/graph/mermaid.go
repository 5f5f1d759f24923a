package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/waymark/internal/presentation/tui"
	"github.com/aretw0/waymark/pkg/domain"
)

// MermaidOptions tunes the generated chart.
type MermaidOptions struct {
	// Detailed expands every route into its cells instead of a single
	// waypoint-to-waypoint edge.
	Detailed bool
	// Direction is the flowchart direction (LR, TD...). Defaults to LR.
	Direction string
}

// GenerateMermaid produces a Mermaid flowchart of the computed routes.
// It applies semantic styling:
// - Waypoint: ((Circle))
// - Risky cell: {{Hexagon}}
// - Route cell: [Rectangle]
// Unreachable pairs are drawn as dotted "no route" edges.
func GenerateMermaid(p domain.Projection, opts MermaidOptions) string {
	dir := opts.Direction
	if dir == "" {
		dir = "LR"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %s\n", dir)

	declared := make(map[domain.Key]bool)
	declare := func(k domain.Key) string {
		id := nodeID(p.Grid.CoordOf(k))
		if declared[k] {
			return id
		}
		declared[k] = true
		sb.WriteString("    " + id + nodeShape(p, k) + "\n")
		return id
	}

	// Waypoints appear even when nothing was computed yet.
	for _, cell := range p.Cells {
		if cell.Class.Kind == domain.KindWaypoint {
			declare(cell.Key)
		}
	}

	edges := make(map[[2]domain.Key]bool)
	for i, path := range p.Paths {
		from, to := declare(path.From), declare(path.To)
		switch {
		case !path.Found:
			fmt.Fprintf(&sb, "    %s -. \"no route\" .-> %s\n", from, to)
		case !opts.Detailed || len(path.Keys) < 2:
			fmt.Fprintf(&sb, "    %s -- \"cost %d\" --> %s\n", from, path.Cost, to)
		default:
			fmt.Fprintf(&sb, "    %%%% route %d: cost %d\n", i+1, path.Cost)
			prev := declare(path.Keys[0])
			for j := 1; j < len(path.Keys); j++ {
				edge := [2]domain.Key{path.Keys[j-1], path.Keys[j]}
				next := declare(path.Keys[j])
				if !edges[edge] {
					edges[edge] = true
					fmt.Fprintf(&sb, "    %s --> %s\n", prev, next)
				}
				prev = next
			}
		}
	}

	sb.WriteString("\n    %% Styles\n")
	fmt.Fprintf(&sb, "    classDef waypoint fill:%s,stroke:#1b5e20,stroke-width:2px,color:#000;\n", tui.ColorMarker)
	fmt.Fprintf(&sb, "    classDef risky fill:%s,stroke:%s,color:#000;\n", tui.ColorRisky, tui.ColorDistinctBlocker)
	fmt.Fprintf(&sb, "    classDef route fill:%s,stroke:#01579b,color:#000;\n", tui.ColorRoute)
	for _, cell := range p.Cells {
		if !declared[cell.Key] {
			continue
		}
		fmt.Fprintf(&sb, "    class %s %s;\n", nodeID(cell.Coord), nodeClass(cell))
	}

	return sb.String()
}

func nodeID(c domain.Coord) string {
	return fmt.Sprintf("c%d_%d", c.X, c.Y)
}

func nodeShape(p domain.Projection, k domain.Key) string {
	cell := p.Cells[k]
	switch cell.Class.Kind {
	case domain.KindWaypoint:
		return fmt.Sprintf("((\"W %s\"))", cell.Coord)
	case domain.KindRisky:
		return fmt.Sprintf("{{\"%s w%d\"}}", cell.Coord, cell.Class.Weight)
	}
	return fmt.Sprintf("[\"%s\"]", cell.Coord)
}

func nodeClass(cell domain.CellView) string {
	switch cell.Class.Kind {
	case domain.KindWaypoint:
		return "waypoint"
	case domain.KindRisky:
		return "risky"
	}
	return "route"
}
