package testutils

import (
	"testing"

	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/stretchr/testify/require"
)

// NewSession creates a w x h session on the four-way A* engine.
// Extra options are applied after the defaults.
// It fails the test immediately on error.
func NewSession(t *testing.T, w, h int, opts ...session.Option) *session.Session {
	t.Helper()

	opts = append([]session.Option{
		session.WithGrid(w, h),
		session.WithEngineFactory(astar.Factory()),
	}, opts...)

	s, err := session.New(opts...)
	require.NoError(t, err, "Failed to create session")
	return s
}

// Place switches s to mode and taps every coordinate.
func Place(t *testing.T, s *session.Session, mode domain.Mode, coords ...domain.Coord) {
	t.Helper()

	require.NoError(t, s.SetMode(mode))
	for _, c := range coords {
		_, err := s.TapCell(c.X, c.Y)
		require.NoError(t, err, "tap %s", c)
	}
}

// PlaceRisky taps c in risky mode and answers the weight prompt.
func PlaceRisky(t *testing.T, s *session.Session, c domain.Coord, weight int) {
	t.Helper()

	Place(t, s, domain.ModePlaceRisky, c)
	require.NoError(t, s.SetRiskWeight(c, weight))
}
