package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics()
	hooks := m.Hooks()

	hooks.OnIntent(&domain.IntentEvent{Intent: domain.IntentTap, Outcome: domain.OutcomeApplied})
	hooks.OnIntent(&domain.IntentEvent{Intent: domain.IntentTap, Outcome: domain.OutcomeApplied})
	hooks.OnIntent(&domain.IntentEvent{Intent: domain.IntentTap, Outcome: domain.OutcomeRejected})
	hooks.OnCompute(&domain.ComputeEvent{Waypoints: 3, Paths: 2, Unreachable: 1, Duration: time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.intents.WithLabelValues("tap", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intents.WithLabelValues("tap", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unreachable))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.waypoints))
	assert.Equal(t, 1, testutil.CollectAndCount(m.computeDuration))

	hooks.OnReset(&domain.ResetEvent{})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.waypoints))
}

func TestMetrics_WriteText(t *testing.T) {
	m := NewMetrics()
	m.Hooks().OnIntent(&domain.IntentEvent{Intent: domain.IntentCompute, Outcome: domain.OutcomeIgnored})

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE waymark_intents_total counter")
	assert.Contains(t, out, `waymark_intents_total{intent="compute",outcome="ignored"} 1`)
	assert.Contains(t, out, "waymark_waypoints 0")
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnIntent: func(*domain.IntentEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnIntent: func(*domain.IntentEvent) { order = append(order, "b") },
		OnReset:  func(*domain.ResetEvent) { order = append(order, "b-reset") },
	}

	hooks := Combine(a, domain.LifecycleHooks{}, b)
	hooks.OnIntent(&domain.IntentEvent{})
	hooks.OnCompute(&domain.ComputeEvent{})
	hooks.OnReset(&domain.ResetEvent{})

	assert.Equal(t, []string{"a", "b", "b-reset"}, order)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := LogHooks(logging.NewWriter(&buf, slog.LevelWarn))

	hooks.OnIntent(&domain.IntentEvent{Intent: domain.IntentTap, Outcome: domain.OutcomeApplied})
	hooks.OnIntent(&domain.IntentEvent{Intent: domain.IntentTap, Outcome: domain.OutcomeRejected, Err: errors.New("off grid")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "intent_rejected")
	assert.Contains(t, lines[0], `err="off grid"`)
}
