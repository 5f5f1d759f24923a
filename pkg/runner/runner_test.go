package runner_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/runner"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, w, h int) *session.Session {
	t.Helper()
	s, err := session.New(session.WithGrid(w, h), session.WithEngineFactory(astar.Factory()))
	require.NoError(t, err)
	return s
}

func TestRunner_TextScript(t *testing.T) {
	s := newSession(t, 3, 2)
	script := strings.Join([]string{
		"# detour around a heavy cell",
		"mode waypoint",
		"tap 0 0",
		"tap 2 0",
		"",
		"mode risky",
		"tap 1 0",
		"weight 5",
		"compute",
		"quit",
		"reset",
	}, "\n")
	var out bytes.Buffer

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(script), &out)))
	require.NoError(t, r.Run(context.Background(), s))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, ". . .\n. . .\n"), "initial board first, got:\n%s", text)
	assert.Contains(t, text, "mode: waypoint")
	assert.Contains(t, text, "weight for (1,0)? (weight <n>)")
	assert.Contains(t, text, "W 5 W\n* * *\n")
	assert.Contains(t, text, "1. (0,0) -> (2,0): cost 4, 5 cells")
	assert.NotContains(t, text, "grid reset", "commands after quit are not read")

	assert.Equal(t, domain.Risky(5), s.Projection().At(domain.Pt(1, 0)).Class)
}

func TestRunner_RejectedCommandsContinue(t *testing.T) {
	s := newSession(t, 3, 3)
	script := "mode obstacle\ntap 9 9\nfly away\ntap 1 1\n"
	var out bytes.Buffer

	r := runner.NewRunner(
		runner.WithHeadless(true),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(script), &out)),
	)
	require.NoError(t, r.Run(context.Background(), s))

	assert.Equal(t, 2, strings.Count(out.String(), "Error: "))
	assert.Equal(t, domain.Obstacle(), s.Projection().At(domain.Pt(1, 1)).Class)
}

func TestRunner_MalformedWeightCancelsPending(t *testing.T) {
	s := newSession(t, 3, 3)
	script := "mode risky\ntap 2 2\nweight lots\n"
	var out bytes.Buffer

	r := runner.NewRunner(
		runner.WithHeadless(true),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(script), &out)),
	)
	require.NoError(t, r.Run(context.Background(), s))

	_, pending := s.PendingRisky()
	assert.False(t, pending)
	assert.True(t, s.Projection().At(domain.Pt(2, 2)).Class.IsEmpty())
	assert.Contains(t, out.String(), "Error: ")
}

func TestRunner_ComputeNotEligible(t *testing.T) {
	s := newSession(t, 2, 2)
	var out bytes.Buffer

	r := runner.NewRunner(
		runner.WithHeadless(true),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader("mode point\ntap 0 0\ncompute\n"), &out)),
	)
	require.NoError(t, r.Run(context.Background(), s))
	assert.Contains(t, out.String(), "need at least two waypoints")
	assert.Empty(t, s.Results())
}

func TestRunner_Cancelled(t *testing.T) {
	s := newSession(t, 2, 2)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(
		runner.WithHeadless(true),
		runner.WithInputHandler(runner.NewTextHandler(pr, io.Discard)),
	)
	assert.ErrorIs(t, r.Run(ctx, s), context.Canceled)
}
