package domain

import (
	"time"
)

// Outcome values reported on IntentEvent.
const (
	OutcomeApplied  = "applied"
	OutcomeDeferred = "deferred"
	OutcomeIgnored  = "ignored"
	OutcomeRejected = "rejected"
)

// IntentEvent describes one intent handled by the session.
type IntentEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	SessionID string     `json:"session_id"`
	Intent    IntentKind `json:"intent"`
	Outcome   string     `json:"outcome"`
	Err       error      `json:"-"`
}

// ComputeEvent describes one engine computation.
type ComputeEvent struct {
	Timestamp   time.Time     `json:"timestamp"`
	SessionID   string        `json:"session_id"`
	Waypoints   int           `json:"waypoints"`
	Paths       int           `json:"paths"`
	Unreachable int           `json:"unreachable"`
	Duration    time.Duration `json:"duration"`
}

// ResetEvent describes a session reset.
type ResetEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Grid      Grid      `json:"grid"`
}

// LifecycleHooks defines callbacks for session observability.
// Hooks run synchronously, in order, before the intent that triggered them
// returns, but after the session lock is released: a hook may read the
// session (e.g. Projection) or apply further intents.
type LifecycleHooks struct {
	OnIntent  func(*IntentEvent)
	OnCompute func(*ComputeEvent)
	OnReset   func(*ResetEvent)
}
