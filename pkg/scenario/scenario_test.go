package scenario_test

import (
	"context"
	"testing"

	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/scenario"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replay(t *testing.T, path string) (*scenario.Scenario, *session.Session, *scenario.Report) {
	t.Helper()
	sc, err := scenario.Load(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Grid)

	s, err := session.New(
		session.WithGrid(sc.Grid.Width, sc.Grid.Height),
		session.WithEngineFactory(astar.Factory()),
	)
	require.NoError(t, err)

	rep, err := sc.Replay(context.Background(), s)
	require.NoError(t, err)
	return sc, s, rep
}

func TestReplay_Detour(t *testing.T) {
	sc, s, rep := replay(t, "testdata/detour.yaml")

	assert.Equal(t, "detour", sc.Name)
	assert.Equal(t, len(sc.Steps), rep.Applied)
	assert.Empty(t, rep.Rejected)
	assert.Equal(t, domain.Risky(5), s.Projection().At(domain.Pt(1, 0)).Class)
	assert.NoError(t, sc.Check(s.Results()))
}

func TestReplay_Enclosed(t *testing.T) {
	sc, s, rep := replay(t, "testdata/enclosed.yaml")

	require.Len(t, rep.Rejected, 1)
	assert.Equal(t, 8, rep.Rejected[0].Step)
	assert.ErrorIs(t, rep.Rejected[0], domain.ErrOutOfBounds)
	assert.NoError(t, sc.Check(s.Results()))
}

func TestReplay_Cancelled(t *testing.T) {
	sc, err := scenario.Parse([]byte(`steps: [{intent: compute}]`))
	require.NoError(t, err)
	s, err := session.New(session.WithEngineFactory(astar.Factory()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sc.Replay(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		want    domain.Intent
		wantErr bool
	}{
		{
			name: "list cell",
			raw:  map[string]any{"intent": "tap", "cell": []any{1, 2}},
			want: domain.Intent{Kind: domain.IntentTap, Cell: &domain.Coord{X: 1, Y: 2}},
		},
		{
			name: "string cell and weight",
			raw:  map[string]any{"intent": "weight", "cell": " 3, 4", "weight": "9"},
			want: domain.Intent{Kind: domain.IntentSetWeight, Cell: &domain.Coord{X: 3, Y: 4}, Weight: 9},
		},
		{
			name: "reset",
			raw:  map[string]any{"intent": "reset", "width": 6},
			want: domain.Intent{Kind: domain.IntentReset, Width: 6},
		},
		{name: "missing intent", raw: map[string]any{"mode": "risky"}, wantErr: true},
		{name: "unknown field", raw: map[string]any{"intent": "tap", "colour": "red"}, wantErr: true},
		{name: "bad cell", raw: map[string]any{"intent": "tap", "cell": []any{1}}, wantErr: true},
		{name: "bad cell string", raw: map[string]any{"intent": "tap", "cell": "a,b"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scenario.DecodeIntent(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := scenario.Parse([]byte("steps: [unclosed"))
	assert.Error(t, err)

	_, err = scenario.Parse([]byte("grid: {width: 0, height: 2}"))
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	_, err = scenario.Parse([]byte("steps:\n  - {mode: risky}\n"))
	assert.ErrorIs(t, err, domain.ErrUnknownIntent)
}

func TestCheck(t *testing.T) {
	one, zero := 1, 0
	sc := &scenario.Scenario{Expect: &scenario.Expect{Paths: &one, Unreachable: &zero}}

	assert.NoError(t, sc.Check(domain.ResultSet{{Found: true}}))
	assert.Error(t, sc.Check(nil))
	assert.Error(t, sc.Check(domain.ResultSet{{Found: false}}))
	assert.NoError(t, (&scenario.Scenario{}).Check(nil))
}
