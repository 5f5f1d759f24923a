/*
Package session implements the Waymark session coordinator.

A Session owns the grid, the cell registry, the edit mode, the pending risky
placement and one path engine instance. It keeps the registry and the engine
board in step: every intent validates first, writes the engine second and the
registry last, so a rejected intent leaves no trace in either.

All public methods are serialized by a single mutex, so several input
sources (a terminal editor and a scripted replay, for example) can share one
session safely.
*/
package session
