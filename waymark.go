package waymark

import (
	_ "embed"
	"strings"

	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/session"
)

//go:embed VERSION
var rawVersion string

// Version is the release of this module.
var Version = strings.TrimSpace(rawVersion)

// Option configures a session created by New.
type Option = session.Option

// Session options, re-exported for library users.
var (
	WithGrid          = session.WithGrid
	WithEngineFactory = session.WithEngineFactory
	WithLogger        = session.WithLogger
	WithHooks         = session.WithHooks
	WithID            = session.WithID
)

// New creates a session searched by the four-way A* engine.
// Pass WithEngineFactory to plug in another engine.
func New(opts ...Option) (*session.Session, error) {
	opts = append([]Option{session.WithEngineFactory(astar.Factory())}, opts...)
	return session.New(opts...)
}

// NewDiagonal creates a session whose routes may also move diagonally.
func NewDiagonal(opts ...Option) (*session.Session, error) {
	opts = append([]Option{session.WithEngineFactory(astar.Factory(astar.WithConnectivity(astar.Conn8)))}, opts...)
	return session.New(opts...)
}
