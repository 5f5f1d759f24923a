// Package astar is the default pathfinding engine for a Waymark session.
//
// The board is a row-major slice, so a board index is the same value as
// domain.Grid.KeyOf for that cell. Routes are searched with A* between every
// consecutive pair of waypoints, in the order the waypoints were registered.
// WithAlgorithm(AlgorithmDijkstra) runs lvlath's Dijkstra over a graph of
// the board instead.
//
// Movement cost is the cost of entering a cell: the risk floor for plain
// cells and waypoints, the weight for risky cells. Obstacles and inaccessible
// cells are never entered.
package astar
