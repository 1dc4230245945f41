package statespace

import (
	"math"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/pqueue"
)

// StateSpace owns the queue, the node table, and the search
// parameters shared between successive A*/LPA* plan() calls.
type StateSpace[K comparable, C core.TimedCoord] struct {
	Table *core.NodeTable[K, C]
	Queue *pqueue.Queue[*core.Node[K, C]]

	Eps  float64
	Dt   float64
	MaxT float64
	Mode Mode

	expandIteration int
	bestChild       []*core.Node[K, C]
}

// New builds an empty StateSpace with the given options applied over
// DefaultOptions.
func New[K comparable, C core.TimedCoord](opts ...Option) *StateSpace[K, C] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &StateSpace[K, C]{
		Table: core.NewNodeTable[K, C](),
		Queue: pqueue.New[*core.Node[K, C]](),
		Eps:   cfg.Eps,
		Dt:    cfg.Dt,
		MaxT:  cfg.MaxT,
		Mode:  cfg.Mode,
	}
}

// epsilonPolicy wraps the current Eps as an EpsilonPolicy. Eps is
// validated at construction time (WithEpsilon panics on a negative
// value), so the error return here is always nil.
func (ss *StateSpace[K, C]) epsilonPolicy() EpsilonPolicy {
	p, _ := NewEpsilonPolicy(ss.Eps)
	return p
}

// HeuristicEnabled reports whether the heuristic is in effect, that is
// whether Eps != 0; Eps == 0 is the sentinel that disables it.
func (ss *StateSpace[K, C]) HeuristicEnabled() bool { return ss.epsilonPolicy().Enabled() }

// EvalHeuristic applies the eps==0 sentinel to a raw heuristic value
// from the environment. Callers use this exactly once, when a node is
// first created, since H is fixed for the node's lifetime thereafter.
func (ss *StateSpace[K, C]) EvalHeuristic(raw float64) float64 {
	if !ss.HeuristicEnabled() {
		return 0
	}
	return raw
}

// TimeAllowed reports whether coordT is within the configured time
// horizon (MaxT <= 0 disables the cap).
func (ss *StateSpace[K, C]) TimeAllowed(coordT float64) bool {
	return ss.MaxT <= 0 || coordT <= ss.MaxT
}

// Priority computes a node's queue key. A* mode returns g + eps*h as
// Primary with Secondary left at zero; LPA* mode returns the
// lexicographic pair (min(g,rhs) + eps*h, min(g,rhs)) so ties are
// broken on the second component rather than projected away.
func (ss *StateSpace[K, C]) Priority(n *core.Node[K, C]) pqueue.Priority {
	policy := ss.epsilonPolicy()
	if ss.Mode == ModeLPA {
		m := math.Min(n.G, n.Rhs)
		return pqueue.Priority{Primary: m + policy.Weight(n.H), Secondary: m}
	}

	return pqueue.Priority{Primary: n.G + policy.Weight(n.H)}
}

// UpdateNode is LPA*'s update_node: recompute rhs from cached
// predecessor edges (skipped for the start node), drop any existing
// queue entry, and re-insert iff the node is inconsistent and within
// the time horizon.
func (ss *StateSpace[K, C]) UpdateNode(n *core.Node[K, C], isStart bool) {
	if !isStart {
		n.Rhs = ss.minPredCost(n)
	}

	if n.HeapHandle != nil {
		_ = ss.Queue.Remove(n.HeapHandle)
		n.HeapHandle = nil
	}

	if n.G != n.Rhs && ss.TimeAllowed(n.Coord.Time()) {
		n.HeapHandle = ss.Queue.Push(ss.Priority(n), n)
	}

	n.Opened = true
	n.Closed = false
}

// minPredCost returns min over predecessor p of p.g + cost(p, n),
// treating +Inf-cost edges (and predecessors not yet in the table) as
// non-contributing.
func (ss *StateSpace[K, C]) minPredCost(n *core.Node[K, C]) float64 {
	best := math.Inf(1)
	for _, pe := range n.PredEdges {
		if math.IsInf(pe.ActionCost, 1) {
			continue
		}
		pred, ok := ss.Table.Get(pe.From)
		if !ok {
			continue
		}
		if cand := pred.G + pe.ActionCost; cand < best {
			best = cand
		}
	}

	return best
}

// ExpandIteration returns the expansion counter left by the last
// completed plan() call.
func (ss *StateSpace[K, C]) ExpandIteration() int { return ss.expandIteration }

// SetExpandIteration records the expansion counter for the just
// completed plan() call.
func (ss *StateSpace[K, C]) SetExpandIteration(n int) { ss.expandIteration = n }

// BestChild returns the start-to-goal node sequence populated by the
// last successful trace-back.
func (ss *StateSpace[K, C]) BestChild() []*core.Node[K, C] { return ss.bestChild }

// SetBestChild replaces the cached best-child sequence.
func (ss *StateSpace[K, C]) SetBestChild(chain []*core.Node[K, C]) { ss.bestChild = chain }

// LastGoal returns the tail of the previous trace-back's best-child
// chain, or nil if there isn't one. LPA* seeds its goal candidate from
// this so a warm replan with nothing relevant changed can terminate
// immediately.
func (ss *StateSpace[K, C]) LastGoal() (*core.Node[K, C], bool) {
	if len(ss.bestChild) == 0 {
		return nil, false
	}

	return ss.bestChild[len(ss.bestChild)-1], true
}
