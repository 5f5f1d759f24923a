package observability

import (
	"log/slog"

	"github.com/aretw0/waymark/pkg/domain"
)

// Combine fans every event out to each set of hooks, in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIntent: func(e *domain.IntentEvent) {
			for _, h := range hooks {
				if h.OnIntent != nil {
					h.OnIntent(e)
				}
			}
		},
		OnCompute: func(e *domain.ComputeEvent) {
			for _, h := range hooks {
				if h.OnCompute != nil {
					h.OnCompute(e)
				}
			}
		},
		OnReset: func(e *domain.ResetEvent) {
			for _, h := range hooks {
				if h.OnReset != nil {
					h.OnReset(e)
				}
			}
		},
	}
}

// LogHooks writes rejected intents as warnings and everything else at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIntent: func(e *domain.IntentEvent) {
			if e.Outcome == domain.OutcomeRejected {
				logger.Warn("intent_rejected", "intent", e.Intent, "err", e.Err)
				return
			}
			logger.Debug("intent", "intent", e.Intent, "outcome", e.Outcome)
		},
		OnCompute: func(e *domain.ComputeEvent) {
			logger.Debug("compute",
				"paths", e.Paths,
				"unreachable", e.Unreachable,
				"duration", e.Duration,
			)
		},
		OnReset: func(e *domain.ResetEvent) {
			logger.Debug("reset", "grid", e.Grid)
		},
	}
}
