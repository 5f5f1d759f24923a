package domain

import "errors"

// ErrOutOfBounds is returned when a coordinate lies outside [0,maxX) x [0,maxY).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ErrInvalidWeight is returned when a risk weight is not a positive integer.
var ErrInvalidWeight = errors.New("risk weight must be a positive integer")

// ErrNotEligible is returned when a computation is requested with fewer than two waypoints.
var ErrNotEligible = errors.New("at least two waypoints are required to compute")

// ErrUnreachable marks a waypoint pair with no connecting route.
// Engines surface it as a Path with Found == false rather than returning it.
var ErrUnreachable = errors.New("no route between waypoints")

// ErrInvalidDimensions is returned when a grid width or height is not in [1, MaxDimension].
var ErrInvalidDimensions = errors.New("grid dimensions must be between 1 and 99")

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown edit mode")

// ErrUnknownIntent is returned when an intent kind is not recognized.
var ErrUnknownIntent = errors.New("unknown intent")

// ErrNothingPending is returned when a weight arrives with no risky placement waiting for it.
var ErrNothingPending = errors.New("no risky placement is waiting for a weight")
