package waymark_test

import (
	"testing"

	"github.com/aretw0/waymark"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, waymark.Version)
	assert.NotContains(t, waymark.Version, "\n")
}

func TestNew_DefaultGrid(t *testing.T) {
	s, err := waymark.New()
	require.NoError(t, err)
	assert.Equal(t, domain.Grid{Width: domain.DefaultWidth, Height: domain.DefaultHeight}, s.Grid())
}

func TestConnectivity(t *testing.T) {
	tests := []struct {
		name  string
		newFn func(...waymark.Option) (*session.Session, error)
		cost  int
	}{
		{"Four Way", waymark.New, 4},
		{"Eight Way", waymark.NewDiagonal, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.newFn(waymark.WithGrid(3, 3), waymark.WithID("fixed"))
			require.NoError(t, err)
			assert.Equal(t, "fixed", s.ID())

			require.NoError(t, s.SetMode(domain.ModePlaceWaypoint))
			_, err = s.TapCell(0, 0)
			require.NoError(t, err)
			_, err = s.TapCell(2, 2)
			require.NoError(t, err)

			require.NoError(t, s.Compute())
			res := s.Results()
			require.Len(t, res, 1)
			assert.True(t, res[0].Found)
			assert.Equal(t, tt.cost, res[0].Cost)
		})
	}
}
