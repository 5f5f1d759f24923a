// Package scenario loads scripted sessions from YAML and replays them.
//
// A scenario is a list of intents, written the same way they travel over the
// NDJSON surface:
//
//	name: detour
//	grid: {width: 3, height: 2}
//	steps:
//	  - {intent: mode, mode: waypoint}
//	  - {intent: tap, cell: [0, 0]}
//	  - {intent: tap, cell: "2,0"}
//	  - {intent: weight, cell: {x: 1, y: 0}, weight: 5}
//	  - {intent: compute}
//	expect:
//	  paths: 1
//	  unreachable: 0
//
// Cells may be given as a map, a two-element list or an "x,y" string.
package scenario
