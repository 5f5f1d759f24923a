/*
Package domain contains the core domain models of the Waymark planning session.

It defines the board, the cell classifications a user can paint, the edit modes
that decide what a tap does, and the route results produced by a path engine.
This package is kept pure and free of external dependencies like I/O or
rendering, following Hexagonal Architecture principles.

# Key Entities

  - Grid: board dimensions and the canonical Coord -> Key mapping.
  - Classification: tagged variant (Empty, Waypoint, Obstacle, Inaccessible, Risky(weight)).
  - Mode: the active edit operation (Idle, PlaceWaypoint, PlaceObstacle, ...).
  - ResultSet: ordered routes between consecutive waypoints.
  - Projection: the read model handed to renderers.
  - Intent: a serializable user request applied by the session.
*/
package domain
