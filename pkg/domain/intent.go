package domain

// IntentKind names a user request the session knows how to apply.
type IntentKind string

const (
	IntentSetMode   IntentKind = "mode"
	IntentTap       IntentKind = "tap"
	IntentSetWeight IntentKind = "weight"
	IntentCompute   IntentKind = "compute"
	IntentReset     IntentKind = "reset"
)

// Intent is a serializable user request. Only the fields relevant to Kind are read:
//
//   - mode:    Mode
//   - tap:     Cell
//   - weight:  Weight, and Cell (defaults to the pending risky placement)
//   - reset:   Width, Height (0 keeps the current value)
type Intent struct {
	Kind   IntentKind `json:"intent" yaml:"intent" mapstructure:"intent"`
	Mode   string     `json:"mode,omitempty" yaml:"mode,omitempty" mapstructure:"mode"`
	Cell   *Coord     `json:"cell,omitempty" yaml:"cell,omitempty" mapstructure:"cell"`
	Weight int        `json:"weight,omitempty" yaml:"weight,omitempty" mapstructure:"weight"`
	Width  int        `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
	Height int        `json:"height,omitempty" yaml:"height,omitempty" mapstructure:"height"`
}
