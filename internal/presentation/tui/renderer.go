package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return r.Render
}

// GridRenderer draws projections with termenv colours.
type GridRenderer struct {
	Profile termenv.Profile
	// Axes prints column and row numbers around the grid.
	Axes bool
}

// NewGridRenderer creates a renderer for the given colour profile.
// Use termenv.Ascii for uncoloured output.
func NewGridRenderer(profile termenv.Profile) *GridRenderer {
	return &GridRenderer{Profile: profile, Axes: true}
}

// Render writes one line per row, cells separated by a space.
func (r *GridRenderer) Render(w io.Writer, p domain.Projection) error {
	var b strings.Builder
	width := len(fmt.Sprint(p.Grid.Height - 1))

	if r.Axes {
		b.WriteString(strings.Repeat(" ", width+1))
		for x := 0; x < p.Grid.Width; x++ {
			fmt.Fprintf(&b, "%d ", x%10)
		}
		b.WriteString("\n")
	}
	for y, row := range p.Rows() {
		if r.Axes {
			fmt.Fprintf(&b, "%*d ", width, y)
		}
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			s := termenv.String(CellSymbol(cell)).Foreground(r.Profile.Color(CellColor(cell)))
			b.WriteString(s.String())
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
