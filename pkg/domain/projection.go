package domain

// Glyph is the renderer-facing symbol of a cell.
type Glyph int

const (
	GlyphNeutral Glyph = iota
	GlyphMarker
	GlyphBlocker
	GlyphDistinctBlocker
	GlyphWeightLabel
	GlyphRouteMarker
)

var glyphNames = map[Glyph]string{
	GlyphNeutral:         "neutral",
	GlyphMarker:          "marker",
	GlyphBlocker:         "blocker",
	GlyphDistinctBlocker: "distinct-blocker",
	GlyphWeightLabel:     "weight-label",
	GlyphRouteMarker:     "route-marker",
}

func (g Glyph) String() string {
	return glyphNames[g]
}

// CellView is the projection of a single cell.
type CellView struct {
	Coord  Coord          `json:"coord"`
	Key    Key            `json:"key"`
	Class  Classification `json:"class"`
	OnPath bool           `json:"on_path,omitempty"`
}

// Glyph applies the rendering precedence: a classification always wins,
// path membership only shows on otherwise empty cells.
func (v CellView) Glyph() Glyph {
	switch v.Class.Kind {
	case KindWaypoint:
		return GlyphMarker
	case KindObstacle:
		return GlyphBlocker
	case KindInaccessible:
		return GlyphDistinctBlocker
	case KindRisky:
		return GlyphWeightLabel
	}
	if v.OnPath {
		return GlyphRouteMarker
	}
	return GlyphNeutral
}

// RouteTint reports whether a labelled risky cell should take the route colour.
func (v CellView) RouteTint() bool {
	return v.OnPath && v.Class.Kind == KindRisky
}

// Projection is the read-only view a renderer consumes.
// Cells are in row-major order, so Cells[k] is the cell with Key k.
type Projection struct {
	SessionID string     `json:"session_id"`
	Grid      Grid       `json:"grid"`
	Mode      Mode       `json:"mode"`
	Eligible  bool       `json:"eligible"`
	Pending   *Coord     `json:"pending,omitempty"`
	Cells     []CellView `json:"cells"`
	Paths     ResultSet  `json:"paths,omitempty"`
}

// At returns the view of c. The caller keeps c inside the grid.
func (p Projection) At(c Coord) CellView {
	return p.Cells[p.Grid.KeyOf(c)]
}

// Rows groups the cells by y for row-oriented renderers.
func (p Projection) Rows() [][]CellView {
	rows := make([][]CellView, p.Grid.Height)
	for y := 0; y < p.Grid.Height; y++ {
		rows[y] = p.Cells[y*p.Grid.Width : (y+1)*p.Grid.Width]
	}
	return rows
}
