package graphsearch

import (
	"errors"
	"math"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/environ"
	"github.com/mplab-go/kinosearch/pqueue"
	"github.com/mplab-go/kinosearch/statespace"
)

// LPAstar runs one incremental replanning pass. Callers own the
// incremental part of "incremental": after the first call, any
// environment change is applied by mutating the affected nodes'
// PredEdges directly (or by seeding new ones through ss.Table) and
// invoking ss.UpdateNode on every node whose incoming cost changed,
// before calling LPAstar again. LPAstar itself never diffs the
// environment; it only drains whatever inconsistency is already
// sitting in ss.Queue plus whatever it discovers along the way.
//
// The goal candidate seeds from ss.LastGoal(), so a call that finds
// nothing new to expand (because nothing relevant changed) reports
// success immediately: the queue's top priority already dominates the
// seeded candidate's key. term.MaxT is copied onto ss.MaxT before the
// loop starts, so each call can override the state space's time
// horizon.
func (gs *GraphSearch[K, C, Pr]) LPAstar(
	startCoord C,
	startKey K,
	env environ.Environment[K, C, Pr],
	ss *statespace.StateSpace[K, C],
	term statespace.Termination,
) (environ.Trajectory[Pr], float64, Result, error) {
	if env.IsGoal(startCoord) {
		return environ.Trajectory[Pr]{}, 0, Result{Success: true, Reason: ReasonAlreadyAtGoal}, nil
	}

	ss.MaxT = term.MaxT

	start, created := ss.Table.GetOrCreate(startKey, func() C { return startCoord })
	if created {
		start.Rhs = 0
		start.H = ss.EvalHeuristic(env.Heuristic(startCoord))
		ss.UpdateNode(start, true)
	}

	goalCandidate := sentinelGoal[K, C]()
	if last, ok := ss.LastGoal(); ok && env.IsGoal(last.Coord) {
		goalCandidate = last
	}

	var expandIterations int
	for gs.lpaShouldContinue(ss, goalCandidate) {
		expandIterations++
		_, u, err := ss.Queue.PopMin()
		if err != nil {
			ss.SetExpandIteration(expandIterations - 1)
			gs.logf("lpastar: queue exhausted after %d expansions", expandIterations-1)
			return environ.Trajectory[Pr]{}, math.Inf(1), Result{Success: false, Reason: ReasonQueueExhausted, ExpandIterations: expandIterations - 1}, nil
		}
		u.Closed = true

		if u.G > u.Rhs {
			u.G = u.Rhs
		} else {
			u.G = math.Inf(1)
			ss.UpdateNode(u, u.Key == startKey)
		}

		exploring := len(u.SuccEdges) == 0

		var coords []C
		var keys []K
		var costs []float64
		var actionIDs []int
		if exploring {
			coords, keys, costs, actionIDs, err = callSuccessors[K, C, Pr](env, u.Coord)
			if err != nil {
				return environ.Trajectory[Pr]{}, math.Inf(1), Result{}, err
			}
		} else {
			coords = make([]C, len(u.SuccEdges))
			keys = make([]K, len(u.SuccEdges))
			costs = make([]float64, len(u.SuccEdges))
			actionIDs = make([]int, len(u.SuccEdges))
			for i, se := range u.SuccEdges {
				coords[i], keys[i], costs[i], actionIDs[i] = se.SuccCoord, se.To, se.ActionCost, se.ActionID
			}
		}

		newSuccEdges := make([]core.SuccEdge[K, C], 0, len(keys))
		for s := range keys {
			succCoord := coords[s]
			v, vCreated := ss.Table.GetOrCreate(keys[s], func() C { return succCoord })
			if vCreated {
				v.H = ss.EvalHeuristic(env.Heuristic(v.Coord))
			}
			if exploring {
				newSuccEdges = append(newSuccEdges, core.SuccEdge[K, C]{
					To:         keys[s],
					ActionID:   actionIDs[s],
					ActionCost: costs[s],
					SuccCoord:  succCoord,
				})
			}
			if !hasPred(v, u.Key) {
				v.PredEdges = append(v.PredEdges, core.PredEdge[K]{
					From:       u.Key,
					ActionID:   actionIDs[s],
					ActionCost: costs[s],
				})
			}
			ss.UpdateNode(v, v.Key == startKey)
		}
		if exploring {
			u.SuccEdges = newSuccEdges
		}

		if gs.isGoalCandidate(u, env, term) {
			goalCandidate = u
		}

		if term.ExpansionCapReached(expandIterations) {
			ss.SetExpandIteration(expandIterations)
			gs.logf("lpastar: expansion cap reached at %d", expandIterations)
			return environ.Trajectory[Pr]{}, math.Inf(1), Result{Success: false, Reason: ReasonExpansionCap, ExpandIterations: expandIterations}, nil
		}
	}

	ss.SetExpandIteration(expandIterations)
	traj, chain, reached := traceBack[K, C, Pr](goalCandidate, ss, env, startKey)
	ss.SetBestChild(chain)

	reason := ReasonGoalReached
	if !env.IsGoal(goalCandidate.Coord) {
		reason = ReasonTimeHorizon
	}
	res := Result{Success: reached, Reason: reason, ExpandIterations: expandIterations}
	if !reached {
		res.TraceLog = traceLog(chain)
	}
	gs.logf("lpastar: done reason=%s expansions=%d g=%f", reason, expandIterations, goalCandidate.G)

	return traj, goalCandidate.G, res, nil
}

// lpaShouldContinue implements the loop guard
// top.priority < priority(goal) || goal.rhs != goal.g. A queue that is
// already empty can still keep the loop alive on the second disjunct:
// that state means a goal candidate was never consistent, and the
// very next PopMin will report QueueExhausted.
func (gs *GraphSearch[K, C, Pr]) lpaShouldContinue(ss *statespace.StateSpace[K, C], goal *core.Node[K, C]) bool {
	if goal.Rhs != goal.G {
		return true
	}
	top, _, err := ss.Queue.Top()
	if errors.Is(err, pqueue.ErrEmpty) {
		return false
	}

	return top.Less(ss.Priority(goal))
}

// isGoalCandidate decides whether an expanded node replaces the
// current goal candidate. The corrected condition (default) promotes
// a node only when it actually satisfies the goal predicate or has
// itself reached the configured time horizon; CompatGoalCandidate
// reproduces the historical condition, which promotes every expanded
// node once any horizon is configured at all, regardless of whether
// that particular node is anywhere near it.
func (gs *GraphSearch[K, C, Pr]) isGoalCandidate(u *core.Node[K, C], env environ.Environment[K, C, Pr], term statespace.Termination) bool {
	if gs.cfg.CompatGoalCandidate {
		return env.IsGoal(u.Coord) || term.MaxT > 0
	}

	return env.IsGoal(u.Coord) || (term.MaxT > 0 && u.Coord.Time() >= term.MaxT)
}

// sentinelGoal returns a detached node with +Inf priority under any
// mode, used to seed LPAstar's goal candidate when no prior trace-back
// exists to resume from. It is never inserted into a NodeTable.
func sentinelGoal[K comparable, C core.TimedCoord]() *core.Node[K, C] {
	return &core.Node[K, C]{G: math.Inf(1), Rhs: math.Inf(1), H: math.Inf(1)}
}
