package cli

import (
	"io"

	"github.com/aretw0/waymark/internal/validator"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/scenario"
)

// Validate statically checks a scenario file and reports the steps a
// session would reject or ignore.
func Validate(opts GlobalOptions, path string, out io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	grid := domain.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	if err := validator.ValidateScenario(sc, grid); err != nil {
		return err
	}
	printSystemMessage(out, "'%s' is valid (%d steps).", path, len(sc.Steps))
	return nil
}
