package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
)

// GridRenderer draws a projection.
type GridRenderer func(w io.Writer, p domain.Projection) error

// ReportRenderer describes computed routes.
type ReportRenderer func(w io.Writer, p domain.Projection) error

// TextHandler implements line commands for humans.
type TextHandler struct {
	Writer io.Writer
	Grid   GridRenderer
	Report ReportRenderer
	Prompt bool

	source *lineSource
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerGrid configures the grid renderer.
func WithTextHandlerGrid(r GridRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Grid = r
	}
}

// WithTextHandlerReport configures the route report renderer.
func WithTextHandlerReport(r ReportRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Report = r
	}
}

// WithPrompt prints "> " before each read.
func WithPrompt(enabled bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = enabled
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		Grid:   PlainGrid,
		Report: PlainReport,
		source: newLineSource(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Input reads lines until one holds a command. Blank lines and lines
// starting with '#' are skipped.
func (h *TextHandler) Input(ctx context.Context) (Command, error) {
	for {
		if h.Prompt {
			fmt.Fprint(h.Writer, "> ")
		}
		line, err := h.source.Next(ctx)
		if err != nil {
			return Command{}, err
		}
		line, err = SanitizeInput(line)
		if err != nil {
			return Command{Err: err}, nil
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return ParseCommand(line), nil
	}
}

// ParseCommand turns one text line into a command.
func ParseCommand(line string) Command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Err: fmt.Errorf("empty command: %w", domain.ErrUnknownIntent)}
	}
	name, args := fields[0], fields[1:]

	intent := func(in domain.Intent) Command { return Command{Intent: &in} }
	fail := func(format string, a ...any) Command { return Command{Err: fmt.Errorf(format, a...)} }

	switch name {
	case "mode", "m":
		if len(args) != 1 {
			return fail("usage: mode <idle|waypoint|obstacle|inaccessible|risky>")
		}
		if _, err := domain.ParseMode(args[0]); err != nil {
			return Command{Err: err}
		}
		return intent(domain.Intent{Kind: domain.IntentSetMode, Mode: args[0]})

	case "tap", "t":
		c, err := parseCoord(args)
		if err != nil {
			return fail("usage: tap <x> <y>: %w", err)
		}
		return intent(domain.Intent{Kind: domain.IntentTap, Cell: &c})

	case "weight", "w":
		if len(args) != 1 {
			return fail("usage: weight <n>: %w", domain.ErrInvalidWeight)
		}
		n, err := session.ParseWeight(args[0])
		if err != nil {
			return Command{Err: err}
		}
		return intent(domain.Intent{Kind: domain.IntentSetWeight, Weight: n})

	case "risk":
		if len(args) != 3 {
			return fail("usage: risk <x> <y> <n>")
		}
		c, err := parseCoord(args[:2])
		if err != nil {
			return fail("usage: risk <x> <y> <n>: %w", err)
		}
		n, err := session.ParseWeight(args[2])
		if err != nil {
			return Command{Err: err}
		}
		return intent(domain.Intent{Kind: domain.IntentSetWeight, Cell: &c, Weight: n})

	case "compute", "c":
		return intent(domain.Intent{Kind: domain.IntentCompute})

	case "reset", "r":
		if len(args) > 2 {
			return fail("usage: reset [width [height]]: %w", domain.ErrInvalidDimensions)
		}
		in := domain.Intent{Kind: domain.IntentReset}
		dims := []*int{&in.Width, &in.Height}
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fail("reset %q: %w", a, domain.ErrInvalidDimensions)
			}
			*dims[i] = n
		}
		return intent(in)

	case "show", "grid":
		return Command{View: ViewGrid}
	case "paths", "report":
		return Command{View: ViewPaths}
	case "help", "?":
		return Command{View: ViewHelp}
	case "quit", "exit", "q":
		return Command{Quit: true}
	}
	return fail("%q: %w", name, domain.ErrUnknownIntent)
}

func parseCoord(args []string) (domain.Coord, error) {
	if len(args) != 2 {
		return domain.Coord{}, fmt.Errorf("want two integers, got %d values", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.Coord{}, fmt.Errorf("x %q is not an integer", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.Coord{}, fmt.Errorf("y %q is not an integer", args[1])
	}
	return domain.Pt(x, y), nil
}

const helpText = `commands:
  mode <idle|waypoint|obstacle|inaccessible|risky>
  tap <x> <y>          apply the current mode to a cell
  weight <n>           complete a pending risky cell
  risk <x> <y> <n>     place a risky cell directly
  compute              route between the waypoints
  reset [w [h]]        clear the board, optionally resizing it
  show | paths | help | quit`

// Close releases the input goroutine. The handler cannot be read from afterwards.
func (h *TextHandler) Close() error {
	return h.source.Close()
}

// Output presents the outcome of a command.
func (h *TextHandler) Output(ctx context.Context, out Outcome) error {
	w := h.Writer
	if out.Before == nil {
		return h.Grid(w, out.After)
	}
	if out.Err != nil {
		_, err := fmt.Fprintf(w, "Error: %v\n", out.Err)
		return err
	}

	switch out.Command.View {
	case ViewGrid:
		return h.Grid(w, out.After)
	case ViewPaths:
		return h.Report(w, out.After)
	case ViewHelp:
		_, err := fmt.Fprintln(w, helpText)
		return err
	}
	if out.Command.Intent == nil {
		return nil
	}

	switch out.Command.Intent.Kind {
	case domain.IntentSetMode:
		_, err := fmt.Fprintf(w, "mode: %s\n", out.After.Mode)
		return err
	case domain.IntentTap:
		if p := out.After.Pending; p != nil {
			_, err := fmt.Fprintf(w, "weight for %s? (weight <n>)\n", *p)
			return err
		}
		return nil
	case domain.IntentCompute:
		if !out.Before.Eligible {
			_, err := fmt.Fprintln(w, "need at least two waypoints to compute")
			return err
		}
		if err := h.Grid(w, out.After); err != nil {
			return err
		}
		return h.Report(w, out.After)
	case domain.IntentReset:
		if _, err := fmt.Fprintf(w, "grid reset to %s\n", out.After.Grid); err != nil {
			return err
		}
		return h.Grid(w, out.After)
	}
	return nil
}

var plainGlyphs = map[domain.Glyph]string{
	domain.GlyphNeutral:         ".",
	domain.GlyphMarker:          "W",
	domain.GlyphBlocker:         "#",
	domain.GlyphDistinctBlocker: "X",
	domain.GlyphRouteMarker:     "*",
}

// PlainGrid draws the grid with one ASCII character per cell.
// Risky cells show their weight, or '+' above 9.
func PlainGrid(w io.Writer, p domain.Projection) error {
	var b strings.Builder
	for _, row := range p.Rows() {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			if cell.Glyph() == domain.GlyphWeightLabel {
				if cell.Class.Weight > 9 {
					b.WriteByte('+')
				} else {
					b.WriteString(strconv.Itoa(cell.Class.Weight))
				}
				continue
			}
			b.WriteString(plainGlyphs[cell.Glyph()])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PlainReport lists the routes, one line per waypoint pair.
func PlainReport(w io.Writer, p domain.Projection) error {
	if len(p.Paths) == 0 {
		_, err := fmt.Fprintln(w, "no routes computed")
		return err
	}
	for i, path := range p.Paths {
		from, to := p.Grid.CoordOf(path.From), p.Grid.CoordOf(path.To)
		var err error
		if path.Found {
			_, err = fmt.Fprintf(w, "%d. %s -> %s: cost %d, %d cells\n", i+1, from, to, path.Cost, len(path.Keys))
		} else {
			_, err = fmt.Fprintf(w, "%d. %s -> %s: %v\n", i+1, from, to, domain.ErrUnreachable)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
