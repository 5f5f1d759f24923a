/*
Package ports defines the driven ports (interfaces) of the Waymark session.

These interfaces decouple the session from the pathfinding engine that owns the
actual search, so any engine honoring the contract can be plugged in.

# Key Interfaces

  - PathEngine: a board the session keeps in sync with its cell registry, plus
    the computation trigger and result retrieval.
  - EngineFactory: creates a fresh board; called on session start and on every reset.

RunPathEngineContract verifies an implementation against the contract.
*/
package ports
