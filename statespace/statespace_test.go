package statespace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/statespace"
)

type coord struct {
	X, Y int
	T    float64
}

func (c coord) Time() float64 { return c.T }

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, statespace.ErrNegativeEpsilon.Error(), func() {
		statespace.WithEpsilon(-1)
	})
}

func TestWithDt_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, statespace.ErrNegativeDt.Error(), func() {
		statespace.WithDt(-1)
	})
}

func TestPriority_AstarMode(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithEpsilon(2), statespace.WithMode(statespace.ModeAstar))
	n := &core.Node[string, coord]{G: 3, H: 4}
	p := ss.Priority(n)
	assert.Equal(t, 11.0, p.Primary) // 3 + 2*4
	assert.Equal(t, 0.0, p.Secondary)
}

func TestPriority_LPAMode(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithEpsilon(1), statespace.WithMode(statespace.ModeLPA))
	n := &core.Node[string, coord]{G: 10, Rhs: 4, H: 2}
	p := ss.Priority(n)
	assert.Equal(t, 6.0, p.Primary)  // min(10,4) + 1*2
	assert.Equal(t, 4.0, p.Secondary)
}

func TestEvalHeuristic_EpsilonZeroSentinel(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithEpsilon(0))
	assert.False(t, ss.HeuristicEnabled())
	assert.Equal(t, 0.0, ss.EvalHeuristic(99))

	ss2 := statespace.New[string, coord](statespace.WithEpsilon(1))
	assert.True(t, ss2.HeuristicEnabled())
	assert.Equal(t, 99.0, ss2.EvalHeuristic(99))
}

func TestTimeAllowed(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithMaxT(0))
	assert.True(t, ss.TimeAllowed(1e9), "MaxT<=0 disables the cap")

	ss2 := statespace.New[string, coord](statespace.WithMaxT(5))
	assert.True(t, ss2.TimeAllowed(5))
	assert.False(t, ss2.TimeAllowed(5.01))
}

func TestUpdateNode_StartNodeSkipsRhsRecompute(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithMode(statespace.ModeLPA))
	start, _ := ss.Table.GetOrCreate("s", func() coord { return coord{} })
	start.G, start.Rhs = math.Inf(1), 0

	ss.UpdateNode(start, true)
	assert.Equal(t, 0.0, start.Rhs)
	assert.True(t, start.Queued(), "inconsistent (g=inf, rhs=0) start must be queued")
}

func TestUpdateNode_RecomputesRhsFromPredecessors(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithMode(statespace.ModeLPA))
	pred, _ := ss.Table.GetOrCreate("p", func() coord { return coord{} })
	pred.G = 3
	n, _ := ss.Table.GetOrCreate("n", func() coord { return coord{} })
	n.PredEdges = []core.PredEdge[string]{
		{From: "p", ActionID: 0, ActionCost: 2},
		{From: "missing", ActionID: 0, ActionCost: 1}, // not yet in table: ignored
	}

	ss.UpdateNode(n, false)
	assert.Equal(t, 5.0, n.Rhs)
}

func TestUpdateNode_InfCostEdgesDoNotContribute(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithMode(statespace.ModeLPA))
	pred, _ := ss.Table.GetOrCreate("p", func() coord { return coord{} })
	pred.G = 1
	n, _ := ss.Table.GetOrCreate("n", func() coord { return coord{} })
	n.PredEdges = []core.PredEdge[string]{{From: "p", ActionID: 0, ActionCost: math.Inf(1)}}

	ss.UpdateNode(n, false)
	assert.True(t, math.IsInf(n.Rhs, 1))
	assert.False(t, n.Queued(), "consistent (g=rhs=+Inf) node must not be queued")
}

func TestUpdateNode_RemovesExistingHandleBeforeReinserting(t *testing.T) {
	ss := statespace.New[string, coord](statespace.WithMode(statespace.ModeLPA))
	n, _ := ss.Table.GetOrCreate("n", func() coord { return coord{} })
	n.G, n.Rhs = math.Inf(1), 0
	ss.UpdateNode(n, true)
	oldHandle := n.HeapHandle
	require.NotNil(t, oldHandle)

	n.Rhs = 1 // still inconsistent, priority changes
	ss.UpdateNode(n, true)
	assert.NotNil(t, n.HeapHandle)
	assert.False(t, oldHandle.Queued(), "the old entry must have been removed")
	assert.Equal(t, 1, ss.Queue.Len())
}

func TestLastGoal_EmptyByDefault(t *testing.T) {
	ss := statespace.New[string, coord]()
	_, ok := ss.LastGoal()
	assert.False(t, ok)
}

func TestLastGoal_ReturnsChainTail(t *testing.T) {
	ss := statespace.New[string, coord]()
	a, _ := ss.Table.GetOrCreate("a", func() coord { return coord{} })
	b, _ := ss.Table.GetOrCreate("b", func() coord { return coord{} })
	ss.SetBestChild([]*core.Node[string, coord]{a, b})

	got, ok := ss.LastGoal()
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestTermination_Caps(t *testing.T) {
	disabled := statespace.Termination{}
	assert.False(t, disabled.ExpansionCapReached(1_000_000))
	assert.False(t, disabled.TimeHorizonReached(1_000_000, 1))

	capped := statespace.Termination{MaxExpand: 5, MaxT: 10}
	assert.False(t, capped.ExpansionCapReached(4))
	assert.True(t, capped.ExpansionCapReached(5))
	assert.True(t, capped.TimeHorizonReached(10, 3))
	assert.False(t, capped.TimeHorizonReached(10, math.Inf(1)), "infinite g never counts as horizon success")
}

func TestEpsilonPolicy_NegativeRejected(t *testing.T) {
	_, err := statespace.NewEpsilonPolicy(-1)
	assert.ErrorIs(t, err, statespace.ErrNegativeEpsilon)
}
