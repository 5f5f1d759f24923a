/*
Package waymark is an interactive grid editor and route planner.

A session owns a rectangular board. Cells are classified by tapping them in
one of the placement modes (waypoint, obstacle, inaccessible, risky), and a
compute request finds the cheapest route between every pair of consecutive
waypoints, in the order they were placed. Obstacles and inaccessible cells
block movement, risky cells cost their weight to enter and every other cell
costs one.

# Concept

The session is the single source of truth. It keeps the edit mode, the
classified cells and the last result set, and mirrors every placement into a
path engine (the ports.PathEngine interface, with an A* implementation in
pkg/adapters/astar). Frontends never touch the engine: they send intents and
read immutable projections.

# Usage

	s, err := waymark.New(waymark.WithGrid(5, 5))
	if err != nil {
		log.Fatal(err)
	}

	_ = s.SetMode(domain.ModePlaceWaypoint)
	_, _ = s.TapCell(0, 0)
	_, _ = s.TapCell(4, 4)

	if err := s.Compute(); err != nil {
		log.Fatal(err)
	}
	for _, p := range s.Results() {
		fmt.Println(p.From, p.To, p.Cost)
	}

The waymark command wraps the same session in a terminal editor, a line
protocol (text or NDJSON) and a headless scenario player.
*/
package waymark
