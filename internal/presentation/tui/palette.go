package tui

import (
	"github.com/aretw0/waymark/pkg/domain"
)

// Cell colours, by glyph.
const (
	ColorNeutral         = "#b8b8b8"
	ColorMarker          = "#4cb44c"
	ColorBlocker         = "#9c1f2c"
	ColorDistinctBlocker = "#ba8025"
	ColorRisky           = "#b8b625"
	ColorRoute           = "#37a3b1"
)

var glyphColors = map[domain.Glyph]string{
	domain.GlyphNeutral:         ColorNeutral,
	domain.GlyphMarker:          ColorMarker,
	domain.GlyphBlocker:         ColorBlocker,
	domain.GlyphDistinctBlocker: ColorDistinctBlocker,
	domain.GlyphWeightLabel:     ColorRisky,
	domain.GlyphRouteMarker:     ColorRoute,
}

var glyphSymbols = map[domain.Glyph]string{
	domain.GlyphNeutral:         "·",
	domain.GlyphMarker:          "●",
	domain.GlyphBlocker:         "■",
	domain.GlyphDistinctBlocker: "▲",
	domain.GlyphRouteMarker:     "•",
}

// CellColor returns the colour of a cell. A risky cell on a route keeps its
// weight label but takes the route colour.
func CellColor(v domain.CellView) string {
	if v.RouteTint() {
		return ColorRoute
	}
	return glyphColors[v.Glyph()]
}

// CellSymbol returns the text drawn for a cell: a symbol, or the weight of a
// risky cell ("+" above 9 so the grid stays aligned).
func CellSymbol(v domain.CellView) string {
	if v.Glyph() == domain.GlyphWeightLabel {
		if v.Class.Weight > 9 {
			return "+"
		}
		return string(rune('0' + v.Class.Weight))
	}
	return glyphSymbols[v.Glyph()]
}
