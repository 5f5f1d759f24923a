package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptWeight
	promptReset
)

var modeKeys = map[string]domain.Mode{
	"0": domain.ModeIdle,
	"1": domain.ModePlaceWaypoint,
	"2": domain.ModePlaceObstacle,
	"3": domain.ModePlaceInaccessible,
	"4": domain.ModePlaceRisky,
}

type editorStyles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
	cells  map[string]lipgloss.Style
}

func defaultEditorStyles() editorStyles {
	s := editorStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRoute)),
		cursor: lipgloss.NewStyle().Reverse(true),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMarker)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlocker)),
		help:   lipgloss.NewStyle().Faint(true),
		cells:  make(map[string]lipgloss.Style),
	}
	for _, c := range []string{ColorNeutral, ColorMarker, ColorBlocker, ColorDistinctBlocker, ColorRisky, ColorRoute} {
		s.cells[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return s
}

// Editor is the interactive grid editor.
// Arrow keys (or hjkl) move the cursor, 1-4 pick a placement mode, 0 goes
// idle, enter or space taps, c computes, r resets and q quits.
type Editor struct {
	sess   *session.Session
	cursor domain.Coord
	prompt promptKind
	input  textinput.Model
	status string
	err    error
	styles editorStyles
}

// NewEditor creates an editor bound to s.
func NewEditor(s *session.Session) *Editor {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20

	return &Editor{
		sess:   s,
		input:  ti,
		styles: defaultEditorStyles(),
		status: "pick a mode with 1-4, then tap cells",
	}
}

// Init implements tea.Model.
func (m *Editor) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.prompt != promptNone {
		return m.updatePrompt(key)
	}

	grid := m.sess.Grid()
	switch k := key.String(); k {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor.Y = max(m.cursor.Y-1, 0)
	case "down", "j":
		m.cursor.Y = min(m.cursor.Y+1, grid.Height-1)
	case "left", "h":
		m.cursor.X = max(m.cursor.X-1, 0)
	case "right", "l":
		m.cursor.X = min(m.cursor.X+1, grid.Width-1)
	case "0", "1", "2", "3", "4":
		m.report(m.sess.SetMode(modeKeys[k]), "mode: "+modeKeys[k].String())
	case "enter", " ":
		return m, m.tap()
	case "c":
		m.compute()
	case "r":
		return m, m.openPrompt(promptReset, "width height (blank keeps current)")
	}
	return m, nil
}

func (m *Editor) tap() tea.Cmd {
	res, err := m.sess.TapCell(m.cursor.X, m.cursor.Y)
	if err != nil {
		m.report(err, "")
		return nil
	}
	if res.AwaitingWeight {
		return m.openPrompt(promptWeight, "risk weight (positive integer)")
	}
	m.report(nil, fmt.Sprintf("tapped %s", m.cursor))
	return nil
}

func (m *Editor) compute() {
	if !m.sess.Eligible() {
		m.report(domain.ErrNotEligible, "")
		return
	}
	if err := m.sess.Compute(); err != nil {
		m.report(err, "")
		return
	}
	results := m.sess.Results()
	m.report(nil, fmt.Sprintf("%d routes, %d unreachable", len(results), results.Unreachable()))
}

func (m *Editor) openPrompt(kind promptKind, placeholder string) tea.Cmd {
	m.prompt = kind
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Editor) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Editor) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		if m.prompt == promptWeight {
			m.sess.CancelPending()
		}
		m.closePrompt()
		m.report(nil, "cancelled")
		return m, nil
	case "enter":
		value := m.input.Value()
		kind := m.prompt
		m.closePrompt()
		switch kind {
		case promptWeight:
			m.submitWeight(value)
		case promptReset:
			m.submitReset(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Editor) submitWeight(value string) {
	pending, ok := m.sess.PendingRisky()
	if !ok {
		m.report(domain.ErrNothingPending, "")
		return
	}
	weight, err := session.ParseWeight(value)
	if err != nil {
		m.sess.CancelPending()
		m.report(err, "")
		return
	}
	m.report(m.sess.SetRiskWeight(pending, weight), fmt.Sprintf("risky %s weight %d", pending, weight))
}

func (m *Editor) submitReset(value string) {
	fields := strings.Fields(value)
	if len(fields) > 2 {
		m.report(fmt.Errorf("reset takes at most two numbers: %w", domain.ErrInvalidDimensions), "")
		return
	}
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			m.report(fmt.Errorf("%q: %w", f, domain.ErrInvalidDimensions), "")
			return
		}
		dims = append(dims, n)
	}
	if err := m.sess.Reset(dims...); err != nil {
		m.report(err, "")
		return
	}
	grid := m.sess.Grid()
	m.cursor.X = min(m.cursor.X, grid.Width-1)
	m.cursor.Y = min(m.cursor.Y, grid.Height-1)
	m.report(nil, "grid reset to "+grid.String())
}

func (m *Editor) report(err error, status string) {
	m.err = err
	if err == nil {
		m.status = status
	}
}

// View implements tea.Model.
func (m *Editor) View() string {
	p := m.sess.Projection()
	var b strings.Builder

	b.WriteString(m.styles.title.Render(fmt.Sprintf("waymark %s  mode: %s", p.Grid, p.Mode)))
	b.WriteString("\n\n")
	for _, row := range p.Rows() {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			style := m.styles.cells[CellColor(cell)]
			if cell.Coord == m.cursor {
				style = style.Inherit(m.styles.cursor)
			}
			b.WriteString(style.Render(CellSymbol(cell)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	switch {
	case m.prompt != promptNone:
		b.WriteString(m.input.View())
	case m.err != nil:
		b.WriteString(m.styles.err.Render("error: " + m.err.Error()))
	default:
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("arrows move · 1 waypoint 2 obstacle 3 inaccessible 4 risky 0 idle · enter tap · c compute · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunEditor runs the editor until the user quits or ctx is cancelled.
func RunEditor(ctx context.Context, s *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewEditor(s), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("editor error: %w", err)
	}
	return nil
}
