package ports

import (
	"testing"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPathEngineContract runs a suite of tests to verify that a PathEngine
// implementation adheres to the defined interface contract.
func RunPathEngineContract(t *testing.T, factory EngineFactory) {
	newEngine := func(t *testing.T, w, h int) PathEngine {
		t.Helper()
		eng, err := factory(w, h, domain.DefaultRiskFloor)
		require.NoError(t, err, "factory should build a %dx%d board", w, h)
		return eng
	}

	t.Run("Keys Agree With Grid", func(t *testing.T) {
		eng := newEngine(t, 3, 2)
		g := domain.Grid{Width: 3, Height: 2}
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				assert.Equal(t, g.KeyOf(domain.Pt(x, y)), eng.KeyOf(x, y))
			}
		}
	})

	t.Run("Out Of Bounds Rejected", func(t *testing.T) {
		eng := newEngine(t, 2, 2)
		assert.ErrorIs(t, eng.RegisterWaypoint(2, 0), domain.ErrOutOfBounds)
		assert.ErrorIs(t, eng.RegisterObstacle(0, -1), domain.ErrOutOfBounds)
		assert.ErrorIs(t, eng.RegisterInaccessible(5, 5), domain.ErrOutOfBounds)
		assert.ErrorIs(t, eng.RegisterRisky(-1, 0, 2), domain.ErrOutOfBounds)
	})

	t.Run("Invalid Weight Rejected", func(t *testing.T) {
		eng := newEngine(t, 2, 2)
		assert.ErrorIs(t, eng.RegisterRisky(1, 1, 0), domain.ErrInvalidWeight)
	})

	t.Run("Compute Needs Two Waypoints", func(t *testing.T) {
		eng := newEngine(t, 2, 2)
		require.NoError(t, eng.Compute())
		assert.Empty(t, eng.Paths())

		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.Compute())
		assert.Empty(t, eng.Paths())
	})

	t.Run("Straight Route", func(t *testing.T) {
		eng := newEngine(t, 3, 1)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(2, 0))
		require.NoError(t, eng.Compute())

		paths := eng.Paths()
		require.Len(t, paths, 1)
		assert.True(t, paths[0].Found)
		assert.Equal(t, []domain.Key{eng.KeyOf(0, 0), eng.KeyOf(1, 0), eng.KeyOf(2, 0)}, paths[0].Keys)
		assert.Equal(t, 2, paths[0].Cost)
	})

	t.Run("Unreachable Pair Marked", func(t *testing.T) {
		eng := newEngine(t, 3, 1)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(2, 0))
		require.NoError(t, eng.RegisterInaccessible(1, 0))
		require.NoError(t, eng.Compute())

		paths := eng.Paths()
		require.Len(t, paths, 1)
		assert.False(t, paths[0].Found)
		assert.Empty(t, paths[0].Keys)
		assert.Equal(t, eng.KeyOf(0, 0), paths[0].From)
		assert.Equal(t, eng.KeyOf(2, 0), paths[0].To)
	})

	t.Run("New Role Supersedes Old", func(t *testing.T) {
		eng := newEngine(t, 3, 1)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(2, 0))
		require.NoError(t, eng.RegisterObstacle(1, 0))
		require.NoError(t, eng.RegisterRisky(1, 0, 3))
		require.NoError(t, eng.Compute())

		paths := eng.Paths()
		require.Len(t, paths, 1)
		require.True(t, paths[0].Found, "obstacle must not leak once the cell is risky")
		assert.Equal(t, 3+domain.DefaultRiskFloor, paths[0].Cost)
	})

	t.Run("Overwritten Waypoint Leaves Route", func(t *testing.T) {
		eng := newEngine(t, 4, 1)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(3, 0))
		require.NoError(t, eng.RegisterWaypoint(1, 0))
		require.NoError(t, eng.RegisterWaypoint(1, 0))
		require.NoError(t, eng.Compute())
		assert.Len(t, eng.Paths(), 2, "re-registering a waypoint must not duplicate it")

		require.NoError(t, eng.RegisterObstacle(1, 0))
		require.NoError(t, eng.Compute())
		paths := eng.Paths()
		require.Len(t, paths, 1)
		assert.Equal(t, eng.KeyOf(0, 0), paths[0].From)
		assert.Equal(t, eng.KeyOf(3, 0), paths[0].To)
		assert.False(t, paths[0].Found)
	})

	t.Run("Deterministic", func(t *testing.T) {
		eng := newEngine(t, 5, 5)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(4, 4))
		require.NoError(t, eng.RegisterWaypoint(0, 4))
		require.NoError(t, eng.RegisterObstacle(2, 2))
		require.NoError(t, eng.RegisterRisky(1, 1, 2))

		require.NoError(t, eng.Compute())
		first := eng.Paths()
		require.NoError(t, eng.Compute())
		assert.Equal(t, first, eng.Paths())
	})

	t.Run("Paths Returns A Copy", func(t *testing.T) {
		eng := newEngine(t, 2, 1)
		require.NoError(t, eng.RegisterWaypoint(0, 0))
		require.NoError(t, eng.RegisterWaypoint(1, 0))
		require.NoError(t, eng.Compute())

		paths := eng.Paths()
		require.Len(t, paths, 1)
		paths[0].Keys[0] = 99
		assert.Equal(t, eng.KeyOf(0, 0), eng.Paths()[0].Keys[0])
	})
}
