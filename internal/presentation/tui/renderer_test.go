package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() domain.Projection {
	g := domain.Grid{Width: 3, Height: 2}
	cells := []domain.CellView{
		{Class: domain.Waypoint(), OnPath: true},
		{Class: domain.Risky(4), OnPath: true},
		{Class: domain.Waypoint(), OnPath: true},
		{Class: domain.Obstacle()},
		{Class: domain.Inaccessible()},
		{},
	}
	for i := range cells {
		cells[i].Key = domain.Key(i)
		cells[i].Coord = g.CoordOf(domain.Key(i))
	}
	return domain.Projection{
		Grid:  g,
		Cells: cells,
		Paths: domain.ResultSet{{From: 0, To: 2, Keys: []domain.Key{0, 1, 2}, Cost: 5, Found: true}},
	}
}

func TestGridRenderer_Plain(t *testing.T) {
	r := &GridRenderer{Profile: termenv.Ascii}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sample()))
	assert.Equal(t, "● 4 ●\n■ ▲ ·\n", buf.String())
}

func TestGridRenderer_Axes(t *testing.T) {
	r := NewGridRenderer(termenv.Ascii)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sample()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  0 1 2 ", lines[0])
	assert.Equal(t, "0 ● 4 ●", lines[1])
}

func TestGridRenderer_Colour(t *testing.T) {
	r := &GridRenderer{Profile: termenv.TrueColor}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sample()))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestCellColor(t *testing.T) {
	p := sample()
	assert.Equal(t, ColorMarker, CellColor(p.Cells[0]))
	assert.Equal(t, ColorRoute, CellColor(p.Cells[1]), "risky on a route takes the route colour")
	assert.Equal(t, ColorBlocker, CellColor(p.Cells[3]))
	assert.Equal(t, ColorDistinctBlocker, CellColor(p.Cells[4]))
	assert.Equal(t, ColorNeutral, CellColor(p.Cells[5]))
	assert.Equal(t, ColorRisky, CellColor(domain.CellView{Class: domain.Risky(2)}))
	assert.Equal(t, ColorRoute, CellColor(domain.CellView{OnPath: true}))
}

func TestCellSymbol(t *testing.T) {
	assert.Equal(t, "7", CellSymbol(domain.CellView{Class: domain.Risky(7)}))
	assert.Equal(t, "+", CellSymbol(domain.CellView{Class: domain.Risky(10)}))
	assert.Equal(t, "•", CellSymbol(domain.CellView{OnPath: true}))
}

func TestReportMarkdown(t *testing.T) {
	p := sample()
	p.Paths = append(p.Paths, domain.Path{From: 2, To: 5})

	md := ReportMarkdown(p)
	assert.Contains(t, md, "| 1 | (0,0) | (2,0) | 5 | 3 | 1 |")
	assert.Contains(t, md, "| 2 | (2,0) | (2,1) | - | - | **unreachable** |")
	assert.Contains(t, md, "1 of 2 waypoint pairs have no route.")

	p.Paths = nil
	assert.Contains(t, ReportMarkdown(p), "_No routes computed._")
}

func TestNewReportRenderer_Raw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportRenderer(nil)(&buf, sample()))
	assert.Equal(t, ReportMarkdown(sample()), buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "waypoint")
	assert.NotContains(t, buf.String(), "\x1b[")
}
