package runner

import (
	"bytes"
	"testing"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cell := func(x, y int) *domain.Coord { c := domain.Pt(x, y); return &c }

	tests := []struct {
		line string
		want Command
	}{
		{"mode waypoint", Command{Intent: &domain.Intent{Kind: domain.IntentSetMode, Mode: "waypoint"}}},
		{"MODE Stop", Command{Intent: &domain.Intent{Kind: domain.IntentSetMode, Mode: "stop"}}},
		{"tap 3 4", Command{Intent: &domain.Intent{Kind: domain.IntentTap, Cell: cell(3, 4)}}},
		{"t -1 0", Command{Intent: &domain.Intent{Kind: domain.IntentTap, Cell: cell(-1, 0)}}},
		{"weight 7", Command{Intent: &domain.Intent{Kind: domain.IntentSetWeight, Weight: 7}}},
		{"risk 1 0 5", Command{Intent: &domain.Intent{Kind: domain.IntentSetWeight, Cell: cell(1, 0), Weight: 5}}},
		{"compute", Command{Intent: &domain.Intent{Kind: domain.IntentCompute}}},
		{"reset", Command{Intent: &domain.Intent{Kind: domain.IntentReset}}},
		{"reset 12", Command{Intent: &domain.Intent{Kind: domain.IntentReset, Width: 12}}},
		{"reset 12 8", Command{Intent: &domain.Intent{Kind: domain.IntentReset, Width: 12, Height: 8}}},
		{"show", Command{View: ViewGrid}},
		{"paths", Command{View: ViewPaths}},
		{"help", Command{View: ViewHelp}},
		{"quit", Command{Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.line))
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		is   error
	}{
		{"mode flying", domain.ErrUnknownMode},
		{"weight 0", domain.ErrInvalidWeight},
		{"weight 2.5", domain.ErrInvalidWeight},
		{"weight", domain.ErrInvalidWeight},
		{"risk 1 1 -4", domain.ErrInvalidWeight},
		{"reset a", domain.ErrInvalidDimensions},
		{"reset 1 2 3", domain.ErrInvalidDimensions},
		{"dance", domain.ErrUnknownIntent},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := ParseCommand(tt.line)
			require.Error(t, cmd.Err)
			assert.ErrorIs(t, cmd.Err, tt.is)
			assert.Nil(t, cmd.Intent)
		})
	}

	assert.Error(t, ParseCommand("tap 1").Err)
	assert.Error(t, ParseCommand("tap x 1").Err)
}

func TestPlainGrid(t *testing.T) {
	p := domain.Projection{
		Grid: domain.Grid{Width: 3, Height: 2},
		Cells: []domain.CellView{
			{Class: domain.Waypoint()},
			{OnPath: true},
			{Class: domain.Risky(12)},
			{Class: domain.Obstacle()},
			{Class: domain.Inaccessible()},
			{Class: domain.Risky(3), OnPath: true},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, PlainGrid(&buf, p))
	assert.Equal(t, "W * +\n# X 3\n", buf.String())
}

func TestPlainReport(t *testing.T) {
	g := domain.Grid{Width: 3, Height: 3}
	p := domain.Projection{
		Grid: g,
		Paths: domain.ResultSet{
			{From: 0, To: 2, Keys: []domain.Key{0, 1, 2}, Cost: 2, Found: true},
			{From: 2, To: 8},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, PlainReport(&buf, p))
	assert.Equal(t,
		"1. (0,0) -> (2,0): cost 2, 3 cells\n2. (2,0) -> (2,2): no route between waypoints\n",
		buf.String())

	buf.Reset()
	require.NoError(t, PlainReport(&buf, domain.Projection{Grid: g}))
	assert.Equal(t, "no routes computed\n", buf.String())
}
