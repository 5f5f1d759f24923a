package domain_test

import (
	"testing"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_KeyOfIsInjective(t *testing.T) {
	sizes := []domain.Grid{{Width: 1, Height: 1}, {Width: 3, Height: 3}, {Width: 2, Height: 7}, {Width: 10, Height: 4}}

	for _, g := range sizes {
		seen := make(map[domain.Key]domain.Coord, g.Size())
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				c := domain.Pt(x, y)
				k := g.KeyOf(c)
				if prev, dup := seen[k]; dup {
					t.Fatalf("grid %s: %s and %s share key %d", g, prev, c, k)
				}
				seen[k] = c
				assert.Equal(t, c, g.CoordOf(k), "CoordOf must invert KeyOf")
			}
		}
		assert.Len(t, seen, g.Size())
	}
}

func TestNewGrid(t *testing.T) {
	g, err := domain.NewGrid(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, g.Size())

	_, err = domain.NewGrid(0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
	_, err = domain.NewGrid(3, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestNewGrid_UpperBound(t *testing.T) {
	g, err := domain.NewGrid(domain.MaxDimension, domain.MaxDimension)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxDimension*domain.MaxDimension, g.Size())

	for _, dims := range [][2]int{{domain.MaxDimension + 1, 1}, {1, domain.MaxDimension + 1}, {1 << 32, 1 << 32}} {
		_, err := domain.NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, domain.ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}
}

func TestGrid_CheckBounds(t *testing.T) {
	g := domain.Grid{Width: 3, Height: 2}

	assert.NoError(t, g.CheckBounds(domain.Pt(0, 0)))
	assert.NoError(t, g.CheckBounds(domain.Pt(2, 1)))

	for _, c := range []domain.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}} {
		assert.ErrorIs(t, g.CheckBounds(c), domain.ErrOutOfBounds, "coord %s", c)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]domain.Mode{
		"idle":         domain.ModeIdle,
		"STOP":         domain.ModeIdle,
		"waypoint":     domain.ModePlaceWaypoint,
		"point":        domain.ModePlaceWaypoint,
		" obstacle ":   domain.ModePlaceObstacle,
		"inaccessible": domain.ModePlaceInaccessible,
		"risk":         domain.ModePlaceRisky,
	}
	for in, want := range cases {
		got, err := domain.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseMode("calculate")
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestClassification(t *testing.T) {
	assert.True(t, domain.Empty().IsEmpty())
	assert.True(t, domain.Obstacle().Blocks())
	assert.True(t, domain.Inaccessible().Blocks())
	assert.False(t, domain.Risky(4).Blocks())
	assert.Equal(t, "risky(4)", domain.Risky(4).String())

	assert.NoError(t, domain.ValidateWeight(1))
	assert.ErrorIs(t, domain.ValidateWeight(0), domain.ErrInvalidWeight)
	assert.ErrorIs(t, domain.ValidateWeight(-3), domain.ErrInvalidWeight)
}

func TestCellView_Glyph(t *testing.T) {
	tests := []struct {
		name   string
		view   domain.CellView
		glyph  domain.Glyph
		tinted bool
	}{
		{"empty", domain.CellView{}, domain.GlyphNeutral, false},
		{"empty on path", domain.CellView{OnPath: true}, domain.GlyphRouteMarker, false},
		{"waypoint on path stays waypoint", domain.CellView{Class: domain.Waypoint(), OnPath: true}, domain.GlyphMarker, false},
		{"obstacle", domain.CellView{Class: domain.Obstacle()}, domain.GlyphBlocker, false},
		{"inaccessible", domain.CellView{Class: domain.Inaccessible()}, domain.GlyphDistinctBlocker, false},
		{"risky", domain.CellView{Class: domain.Risky(2)}, domain.GlyphWeightLabel, false},
		{"risky on path keeps label", domain.CellView{Class: domain.Risky(2), OnPath: true}, domain.GlyphWeightLabel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.glyph, tt.view.Glyph())
			assert.Equal(t, tt.tinted, tt.view.RouteTint())
		})
	}
}
