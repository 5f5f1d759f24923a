package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
//
// Each input line is an intent object such as {"intent":"tap","cell":{"x":1,"y":2}},
// or a control object: {"view":"grid"}, {"view":"paths"}, {"quit":true}.
// Each output line is a Response.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	source *lineSource
}

// Response is one line of JSON output.
type Response struct {
	Intent domain.IntentKind `json:"intent,omitempty"`
	View   View              `json:"view,omitempty"`
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`

	// Diff holds what the command changed; absent when nothing changed.
	Diff *domain.ProjectionDiff `json:"diff,omitempty"`

	// Projection is the full view, sent for {"view":"grid"}.
	Projection *domain.Projection `json:"projection,omitempty"`

	// Paths is sent for {"view":"paths"}.
	Paths domain.ResultSet `json:"paths,omitempty"`
}

type jsonCommand struct {
	domain.Intent
	View View `json:"view,omitempty"`
	Quit bool `json:"quit,omitempty"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		source:  newLineSource(r),
	}
}

// Input reads the next non-blank line and decodes it.
func (h *JSONHandler) Input(ctx context.Context) (Command, error) {
	for {
		line, err := h.source.Next(ctx)
		if err != nil {
			return Command{}, err
		}
		line, err = SanitizeInput(line)
		if err != nil {
			return Command{Err: err}, nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return decodeCommand(line), nil
	}
}

func decodeCommand(line string) Command {
	var jc jsonCommand
	if err := json.Unmarshal([]byte(line), &jc); err != nil {
		if isWeightIntent(line) {
			return Command{Err: fmt.Errorf("%w: %v", domain.ErrInvalidWeight, err)}
		}
		return Command{Err: fmt.Errorf("invalid json command: %w", err)}
	}
	switch {
	case jc.Quit:
		return Command{Quit: true}
	case jc.View != ViewNone:
		if jc.View != ViewGrid && jc.View != ViewPaths {
			return Command{Err: fmt.Errorf("view %q: %w", jc.View, domain.ErrUnknownIntent)}
		}
		return Command{View: jc.View}
	case jc.Kind == "":
		return Command{Err: fmt.Errorf("missing intent: %w", domain.ErrUnknownIntent)}
	}
	in := jc.Intent
	return Command{Intent: &in}
}

// isWeightIntent reports whether line is a weight intent whose fields failed to decode,
// e.g. {"intent":"weight","weight":2.5}.
func isWeightIntent(line string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return false
	}
	var kind domain.IntentKind
	if err := json.Unmarshal(fields["intent"], &kind); err != nil {
		return false
	}
	return kind == domain.IntentSetWeight
}

// Close releases the input goroutine. The handler cannot be read from afterwards.
func (h *JSONHandler) Close() error {
	return h.source.Close()
}

// Output writes one Response line.
func (h *JSONHandler) Output(ctx context.Context, out Outcome) error {
	resp := Response{OK: out.Err == nil, View: out.Command.View}
	if out.Command.Intent != nil {
		resp.Intent = out.Command.Intent.Kind
	}
	if out.Err != nil {
		resp.Error = out.Err.Error()
	}

	switch {
	case out.Before == nil:
		resp.Diff = domain.Diff(nil, &out.After)
	case out.Command.View == ViewGrid:
		p := out.After
		resp.Projection = &p
	case out.Command.View == ViewPaths:
		resp.Paths = out.After.Paths
	default:
		resp.Diff = domain.Diff(out.Before, &out.After)
	}
	return h.Encoder.Encode(resp)
}
