package graphsearch

import (
	"math"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/environ"
	"github.com/mplab-go/kinosearch/statespace"
)

// Astar runs a weighted A* search from startCoord/startKey to any
// coordinate satisfying env.IsGoal, using ss for the frontier and node
// table and term for the advisory expansion and time caps.
//
// Successor discovery is lazy: a coordinate only enters ss.Table the
// first time some expanded node names it as a successor. Predecessor
// edges are appended unconditionally, without deduplication: unlike
// LPAstar's incremental update, a one-shot A* run never needs to
// revisit an edge's recorded cost, so keeping every discovery is
// simpler than reasoning about which one to keep.
func (gs *GraphSearch[K, C, Pr]) Astar(
	startCoord C,
	startKey K,
	env environ.Environment[K, C, Pr],
	ss *statespace.StateSpace[K, C],
	term statespace.Termination,
) (environ.Trajectory[Pr], Result, error) {
	if env.IsGoal(startCoord) {
		return environ.Trajectory[Pr]{}, Result{Success: true, Reason: ReasonAlreadyAtGoal}, nil
	}

	if ss.Queue.Empty() {
		n, created := ss.Table.GetOrCreate(startKey, func() C { return startCoord })
		if created {
			n.H = ss.EvalHeuristic(env.Heuristic(startCoord))
		}
		n.G = 0
		n.Opened = true
		n.HeapHandle = ss.Queue.Push(ss.Priority(n), n)
	}

	var (
		curr             *core.Node[K, C]
		expandIterations int
		reason           Reason
	)

	for {
		expandIterations++
		_, popped, err := ss.Queue.PopMin()
		if err != nil {
			ss.SetExpandIteration(expandIterations - 1)
			gs.logf("astar: queue exhausted after %d expansions", expandIterations-1)
			return environ.Trajectory[Pr]{}, Result{Success: false, Reason: ReasonQueueExhausted, ExpandIterations: expandIterations - 1}, nil
		}
		curr = popped
		curr.Closed = true

		coords, keys, costs, actionIDs, err := callSuccessors[K, C, Pr](env, curr.Coord)
		if err != nil {
			return environ.Trajectory[Pr]{}, Result{}, err
		}

		for s := range coords {
			if math.IsInf(costs[s], 1) {
				continue
			}

			succCoord := coords[s]
			succ, created := ss.Table.GetOrCreate(keys[s], func() C { return succCoord })
			if created {
				succ.H = ss.EvalHeuristic(env.Heuristic(succ.Coord))
			}
			succ.PredEdges = append(succ.PredEdges, core.PredEdge[K]{
				From:       curr.Key,
				ActionID:   actionIDs[s],
				ActionCost: costs[s],
			})

			if tentative := curr.G + costs[s]; tentative < succ.G {
				succ.G = tentative
				prio := ss.Priority(succ)
				if succ.Opened && !succ.Closed {
					_ = ss.Queue.Update(succ.HeapHandle, prio)
				} else {
					succ.HeapHandle = ss.Queue.Push(prio, succ)
					succ.Opened = true
				}
			}
		}

		switch {
		case env.IsGoal(curr.Coord):
			reason = ReasonGoalReached
		case term.TimeHorizonReached(curr.Coord.Time(), curr.G):
			reason = ReasonTimeHorizon
		}
		if reason != ReasonUnknown {
			break
		}

		if term.ExpansionCapReached(expandIterations) {
			ss.SetExpandIteration(expandIterations)
			gs.logf("astar: expansion cap reached at %d", expandIterations)
			return environ.Trajectory[Pr]{}, Result{Success: false, Reason: ReasonExpansionCap, ExpandIterations: expandIterations}, nil
		}
		if ss.Queue.Empty() {
			ss.SetExpandIteration(expandIterations)
			gs.logf("astar: queue exhausted after %d expansions", expandIterations)
			return environ.Trajectory[Pr]{}, Result{Success: false, Reason: ReasonQueueExhausted, ExpandIterations: expandIterations}, nil
		}
	}

	ss.SetExpandIteration(expandIterations)
	traj, chain, reached := traceBack[K, C, Pr](curr, ss, env, startKey)
	ss.SetBestChild(chain)

	res := Result{Success: reached, Reason: reason, ExpandIterations: expandIterations}
	if !reached {
		res.TraceLog = traceLog(chain)
	}
	gs.logf("astar: done reason=%s expansions=%d reached=%t", reason, expandIterations, reached)

	return traj, res, nil
}
