package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted session.
type Scenario struct {
	Name        string
	Description string
	Grid        *domain.Grid
	Steps       []domain.Intent
	Expect      *Expect
}

// Expect holds optional checks run against the final results.
type Expect struct {
	Paths       *int `yaml:"paths"`
	Unreachable *int `yaml:"unreachable"`
}

type file struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Grid        *domain.Grid     `yaml:"grid"`
	Steps       []map[string]any `yaml:"steps"`
	Expect      *Expect          `yaml:"expect"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid scenario yaml: %w", err)
	}
	if f.Grid != nil {
		if _, err := domain.NewGrid(f.Grid.Width, f.Grid.Height); err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
	}

	sc := &Scenario{
		Name:        f.Name,
		Description: f.Description,
		Grid:        f.Grid,
		Expect:      f.Expect,
		Steps:       make([]domain.Intent, 0, len(f.Steps)),
	}
	for i, raw := range f.Steps {
		in, err := DecodeIntent(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		sc.Steps = append(sc.Steps, in)
	}
	return sc, nil
}

// DecodeIntent converts a loosely typed map into an Intent.
func DecodeIntent(raw map[string]any) (domain.Intent, error) {
	var in domain.Intent
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       coordHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &in,
	})
	if err != nil {
		return in, err
	}
	if err := dec.Decode(raw); err != nil {
		return in, err
	}
	if in.Kind == "" {
		return in, fmt.Errorf("missing intent: %w", domain.ErrUnknownIntent)
	}
	return in, nil
}

var coordType = reflect.TypeOf(domain.Coord{})

// coordHook accepts [x, y] lists and "x,y" strings for Coord fields.
func coordHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != coordType {
		return data, nil
	}
	switch v := data.(type) {
	case []any:
		if len(v) != 2 {
			return nil, fmt.Errorf("cell needs two values, got %d", len(v))
		}
		return map[string]any{"x": v[0], "y": v[1]}, nil
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("cell %q is not \"x,y\"", v)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("cell %q: %w", v, err)
		}
		return map[string]any{"x": x, "y": y}, nil
	}
	return data, nil
}

// StepError records a step the session rejected.
type StepError struct {
	Step   int
	Intent domain.Intent
	Err    error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Intent.Kind, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

// Report summarizes a replay.
type Report struct {
	Applied  int
	Rejected []StepError
}

// Replay applies every step to s. Rejected steps have no effect on the
// session and are collected in the report; only cancellation stops the replay.
func (sc *Scenario) Replay(ctx context.Context, s *session.Session) (*Report, error) {
	rep := &Report{}
	for i, in := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := s.Apply(in); err != nil {
			rep.Rejected = append(rep.Rejected, StepError{Step: i + 1, Intent: in, Err: err})
			continue
		}
		rep.Applied++
	}
	return rep, nil
}

// Check compares results against the scenario expectations.
func (sc *Scenario) Check(results domain.ResultSet) error {
	if sc.Expect == nil {
		return nil
	}
	var errs []error
	if sc.Expect.Paths != nil && *sc.Expect.Paths != len(results) {
		errs = append(errs, fmt.Errorf("expected %d paths, got %d", *sc.Expect.Paths, len(results)))
	}
	if sc.Expect.Unreachable != nil && *sc.Expect.Unreachable != results.Unreachable() {
		errs = append(errs, fmt.Errorf("expected %d unreachable pairs, got %d", *sc.Expect.Unreachable, results.Unreachable()))
	}
	return errors.Join(errs...)
}
