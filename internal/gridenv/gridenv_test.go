package gridenv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplab-go/kinosearch/internal/gridenv"
)

func TestGrid_IsGoal(t *testing.T) {
	g := gridenv.New(3, 3, 1, 2, 2)
	assert.True(t, g.IsGoal(gridenv.Coord{X: 2, Y: 2, T: 5}))
	assert.False(t, g.IsGoal(gridenv.Coord{X: 0, Y: 0}))
}

func TestGrid_Heuristic_Manhattan(t *testing.T) {
	g := gridenv.New(5, 5, 1, 4, 4)
	assert.Equal(t, 8.0, g.Heuristic(gridenv.Coord{X: 0, Y: 0}))
	assert.Equal(t, 0.0, g.Heuristic(gridenv.Coord{X: 4, Y: 4}))
}

func TestGrid_Successors_CornerHasTwoNeighbors(t *testing.T) {
	g := gridenv.New(3, 3, 0.5, 2, 2)
	coords, keys, costs, actionIDs := g.Successors(gridenv.Coord{X: 0, Y: 0})
	require.Len(t, coords, 2)
	require.Len(t, keys, 2)
	require.Len(t, costs, 2)
	require.Len(t, actionIDs, 2)
	for i, c := range coords {
		assert.Equal(t, 0.5, c.T)
		assert.Equal(t, 1.0, costs[i])
	}
}

func TestGrid_Successors_BlockedCellReportsInfCost(t *testing.T) {
	g := gridenv.New(3, 3, 1, 2, 2)
	g.Block(1, 0)
	coords, _, costs, _ := g.Successors(gridenv.Coord{X: 0, Y: 0})
	found := false
	for i, c := range coords {
		if c.X == 1 && c.Y == 0 {
			found = true
			assert.True(t, math.IsInf(costs[i], 1))
		}
	}
	assert.True(t, found, "blocked neighbor must still be reported")
}

func TestGrid_Unblock_RestoresUnitCost(t *testing.T) {
	g := gridenv.New(3, 3, 1, 2, 2)
	g.Block(1, 0)
	g.Unblock(1, 0)
	_, _, costs, _ := g.Successors(gridenv.Coord{X: 0, Y: 0})
	for _, c := range costs {
		assert.False(t, math.IsInf(c, 1))
	}
}

func TestGrid_ForwardAction_RoundTrips(t *testing.T) {
	g := gridenv.New(3, 3, 1, 2, 2)
	coords, keys, _, actionIDs := g.Successors(gridenv.Coord{X: 1, Y: 1})
	for i := range coords {
		pr, err := g.ForwardAction(gridenv.Coord{X: 1, Y: 1}, actionIDs[i])
		require.NoError(t, err)
		assert.Equal(t, keys[i], pr.To)
	}
}

func TestGrid_ForwardAction_OutOfBounds(t *testing.T) {
	g := gridenv.New(3, 3, 1, 2, 2)
	_, err := g.ForwardAction(gridenv.Coord{X: 0, Y: 0}, 0) // north of the top row
	assert.ErrorIs(t, err, gridenv.ErrOutOfBounds)

	_, err = g.ForwardAction(gridenv.Coord{X: 0, Y: 0}, 99)
	assert.ErrorIs(t, err, gridenv.ErrOutOfBounds)
}
