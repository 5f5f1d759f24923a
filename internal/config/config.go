// Package config loads waymark.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aretw0/waymark/internal/logging"
	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "waymark.yaml"

// Colour modes for render.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the file-level configuration. Flags override it.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type EngineConfig struct {
	// Connectivity is 4 (orthogonal moves) or 8 (diagonals too).
	Connectivity int `yaml:"connectivity"`
	// Algorithm is "astar" or "dijkstra".
	Algorithm string `yaml:"algorithm"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RenderConfig struct {
	Color string `yaml:"color"`
}

// Default returns the built-in configuration: a 10x10 grid searched with
// four-way moves.
func Default() Config {
	return Config{
		Grid:   GridConfig{Width: 10, Height: 10},
		Engine: EngineConfig{Connectivity: int(astar.Conn4), Algorithm: string(astar.AlgorithmAStar)},
		Log:    LogConfig{Level: "error"},
		Render: RenderConfig{Color: ColorAuto},
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path means DefaultPath, which may be missing; an explicit path
// must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if _, err := domain.NewGrid(c.Grid.Width, c.Grid.Height); err != nil {
		errs = append(errs, err)
	}
	if _, err := astar.ParseConnectivity(c.Engine.Connectivity); err != nil {
		errs = append(errs, err)
	}
	if _, err := astar.ParseAlgorithm(c.Engine.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Render.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("render.color %q: want auto, always or never", c.Render.Color))
	}
	return errors.Join(errs...)
}
