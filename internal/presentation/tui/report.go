package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
)

// ReportMarkdown describes the computed routes as a markdown table.
func ReportMarkdown(p domain.Projection) string {
	var sb strings.Builder
	sb.WriteString("## Routes\n\n")
	if len(p.Paths) == 0 {
		sb.WriteString("_No routes computed._\n")
		return sb.String()
	}

	sb.WriteString("| # | From | To | Cost | Cells | Risky cells |\n")
	sb.WriteString("|---|------|----|-----:|------:|------------:|\n")
	for i, path := range p.Paths {
		from, to := p.Grid.CoordOf(path.From), p.Grid.CoordOf(path.To)
		if !path.Found {
			fmt.Fprintf(&sb, "| %d | %s | %s | - | - | **unreachable** |\n", i+1, from, to)
			continue
		}
		risky := 0
		for _, k := range path.Keys {
			if int(k) < len(p.Cells) && p.Cells[k].Class.Kind == domain.KindRisky {
				risky++
			}
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %d | %d | %d |\n", i+1, from, to, path.Cost, len(path.Keys), risky)
	}

	if n := p.Paths.Unreachable(); n > 0 {
		fmt.Fprintf(&sb, "\n%d of %d waypoint pairs have no route.\n", n, len(p.Paths))
	}
	return sb.String()
}

// NewReportRenderer returns a writer-based report renderer on top of a
// markdown renderer such as NewRenderer. A nil render prints raw markdown.
func NewReportRenderer(render func(string) (string, error)) func(io.Writer, domain.Projection) error {
	return func(w io.Writer, p domain.Projection) error {
		md := ReportMarkdown(p)
		out := md
		if render != nil {
			if rendered, err := render(md); err == nil {
				out = rendered
			}
		}
		_, err := io.WriteString(w, out)
		return err
	}
}
