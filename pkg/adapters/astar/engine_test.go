package astar_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/waymark/pkg/adapters/astar"
	"github.com/aretw0/waymark/pkg/domain"
	"github.com/aretw0/waymark/pkg/ports"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Contract(t *testing.T) {
	t.Run("Conn4", func(t *testing.T) {
		ports.RunPathEngineContract(t, astar.Factory())
	})
	t.Run("Conn8", func(t *testing.T) {
		ports.RunPathEngineContract(t, astar.Factory(astar.WithConnectivity(astar.Conn8)))
	})
	t.Run("Dijkstra Conn4", func(t *testing.T) {
		ports.RunPathEngineContract(t, astar.Factory(astar.WithAlgorithm(astar.AlgorithmDijkstra)))
	})
	t.Run("Dijkstra Conn8", func(t *testing.T) {
		ports.RunPathEngineContract(t, astar.Factory(
			astar.WithAlgorithm(astar.AlgorithmDijkstra),
			astar.WithConnectivity(astar.Conn8),
		))
	})
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]astar.Algorithm{
		"":         astar.AlgorithmAStar,
		"astar":    astar.AlgorithmAStar,
		"dijkstra": astar.AlgorithmDijkstra,
	} {
		got, err := astar.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := astar.ParseAlgorithm("bfs")
	assert.Error(t, err)

	_, err = astar.New(3, 3, 1, astar.WithAlgorithm("bfs"))
	assert.Error(t, err)
}

// Both searches are optimal, so on any board they agree on which pairs are
// reachable and at what cost.
func TestCompute_AlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, conn := range []astar.Connectivity{astar.Conn4, astar.Conn8} {
		for round := 0; round < 20; round++ {
			w, h := 3+rng.Intn(6), 3+rng.Intn(6)
			a, err := astar.New(w, h, domain.DefaultRiskFloor, astar.WithConnectivity(conn))
			require.NoError(t, err)
			d, err := astar.New(w, h, domain.DefaultRiskFloor,
				astar.WithConnectivity(conn), astar.WithAlgorithm(astar.AlgorithmDijkstra))
			require.NoError(t, err)

			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					r := rng.Intn(10)
					for _, eng := range []*astar.Engine{a, d} {
						switch r {
						case 0:
							require.NoError(t, eng.RegisterWaypoint(x, y))
						case 1:
							require.NoError(t, eng.RegisterObstacle(x, y))
						case 2:
							require.NoError(t, eng.RegisterRisky(x, y, 2+x%4))
						}
					}
				}
			}
			require.NoError(t, a.Compute())
			require.NoError(t, d.Compute())

			want, got := a.Paths(), d.Paths()
			require.Len(t, got, len(want), "conn %d round %d", conn, round)
			for i := range want {
				assert.Equal(t, want[i].Found, got[i].Found, "conn %d round %d pair %d", conn, round, i)
				assert.Equal(t, want[i].Cost, got[i].Cost, "conn %d round %d pair %d", conn, round, i)
				if got[i].Found {
					assert.Equal(t, want[i].From, got[i].Keys[0])
					assert.Equal(t, want[i].To, got[i].Keys[len(got[i].Keys)-1])
				}
			}
		}
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := astar.New(0, 3, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	_, err = astar.New(1<<32, 1<<32, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)

	_, err = astar.New(domain.MaxDimension, domain.MaxDimension, 1)
	assert.NoError(t, err)

	_, err = astar.New(3, 3, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)

	_, err = astar.New(3, 3, 1, astar.WithConnectivity(6))
	assert.Error(t, err)
}

func TestParseConnectivity(t *testing.T) {
	c, err := astar.ParseConnectivity(8)
	require.NoError(t, err)
	assert.Equal(t, astar.Conn8, c)

	_, err = astar.ParseConnectivity(3)
	assert.Error(t, err)
}

func TestCompute_EnclosedWaypoint(t *testing.T) {
	eng, err := astar.New(3, 3, domain.DefaultRiskFloor)
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(2, 2))
	require.NoError(t, eng.RegisterObstacle(1, 1))
	require.NoError(t, eng.RegisterObstacle(1, 0))
	require.NoError(t, eng.RegisterObstacle(0, 1))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, eng.KeyOf(0, 0), paths[0].From)
	assert.Equal(t, eng.KeyOf(2, 2), paths[0].To)
	assert.False(t, paths[0].Found)
}

func TestCompute_AroundCentre(t *testing.T) {
	eng, err := astar.New(3, 3, domain.DefaultRiskFloor)
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(2, 2))
	require.NoError(t, eng.RegisterObstacle(1, 1))
	require.NoError(t, eng.RegisterObstacle(1, 0))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	require.True(t, paths[0].Found)

	want := []domain.Key{
		eng.KeyOf(0, 0), eng.KeyOf(0, 1), eng.KeyOf(0, 2), eng.KeyOf(1, 2), eng.KeyOf(2, 2),
	}
	if diff := cmp.Diff(want, paths[0].Keys); diff != "" {
		t.Errorf("route mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, paths[0].Cost)
}

func TestCompute_PrefersCheaperDetour(t *testing.T) {
	eng, err := astar.New(3, 2, domain.DefaultRiskFloor)
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(2, 0))
	require.NoError(t, eng.RegisterRisky(1, 0, 5))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	require.True(t, paths[0].Found)
	assert.NotContains(t, paths[0].Keys, eng.KeyOf(1, 0))
	assert.Equal(t, 4, paths[0].Cost)
}

func TestCompute_CrossesCheapRisk(t *testing.T) {
	eng, err := astar.New(3, 2, domain.DefaultRiskFloor)
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(2, 0))
	require.NoError(t, eng.RegisterRisky(1, 0, 2))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, []domain.Key{0, 1, 2}, paths[0].Keys)
	assert.Equal(t, 3, paths[0].Cost)
}

func TestCompute_MultiplePairs(t *testing.T) {
	eng, err := astar.New(4, 4, domain.DefaultRiskFloor)
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(3, 0))
	require.NoError(t, eng.RegisterWaypoint(3, 3))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, eng.KeyOf(0, 0), paths[0].From)
	assert.Equal(t, eng.KeyOf(3, 0), paths[0].To)
	assert.Equal(t, eng.KeyOf(3, 0), paths[1].From)
	assert.Equal(t, eng.KeyOf(3, 3), paths[1].To)
	assert.Equal(t, 3, paths[0].Cost)
	assert.Equal(t, 3, paths[1].Cost)
}

func TestCompute_Diagonal(t *testing.T) {
	eng, err := astar.New(3, 3, domain.DefaultRiskFloor, astar.WithConnectivity(astar.Conn8))
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(2, 2))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, []domain.Key{eng.KeyOf(0, 0), eng.KeyOf(1, 1), eng.KeyOf(2, 2)}, paths[0].Keys)
	assert.Equal(t, 2, paths[0].Cost)
}

func TestCompute_NoCornerCutting(t *testing.T) {
	eng, err := astar.New(2, 2, domain.DefaultRiskFloor, astar.WithConnectivity(astar.Conn8))
	require.NoError(t, err)

	require.NoError(t, eng.RegisterWaypoint(0, 0))
	require.NoError(t, eng.RegisterWaypoint(1, 1))
	require.NoError(t, eng.RegisterObstacle(1, 0))
	require.NoError(t, eng.RegisterObstacle(0, 1))
	require.NoError(t, eng.Compute())

	paths := eng.Paths()
	require.Len(t, paths, 1)
	assert.False(t, paths[0].Found)
}
