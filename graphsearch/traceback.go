package graphsearch

import (
	"fmt"
	"math"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/environ"
	"github.com/mplab-go/kinosearch/statespace"
)

// traceBack walks predecessor edges from goal back to startKey,
// choosing at each step the finite-cost predecessor achieving the
// smallest p.g + cost, breaking ties in favor of the larger p.g. It
// returns the reconstructed trajectory in start-to-goal order, the
// node chain in the same order (for StateSpace.SetBestChild / a
// future LastGoal seed), and whether the walk actually reached
// startKey.
func traceBack[K comparable, C core.TimedCoord, Pr any](
	goal *core.Node[K, C],
	ss *statespace.StateSpace[K, C],
	env environ.Environment[K, C, Pr],
	startKey K,
) (environ.Trajectory[Pr], []*core.Node[K, C], bool) {
	chain := []*core.Node[K, C]{goal}
	var prims []Pr

	curr := goal
	for len(curr.PredEdges) > 0 {
		minID := -1
		minCost := math.Inf(1)
		minG := math.Inf(1)

		for i, pe := range curr.PredEdges {
			if math.IsInf(pe.ActionCost, 1) {
				continue
			}
			pred, ok := ss.Table.Get(pe.From)
			if !ok {
				continue
			}
			cand := pred.G + pe.ActionCost
			switch {
			case cand < minCost:
				minCost, minG, minID = cand, pred.G, i
			case cand == minCost && pred.G > minG:
				minG, minID = pred.G, i
			}
		}

		if minID < 0 {
			return environ.Trajectory[Pr]{Primitives: revPrims(prims)}, revChain(chain), false
		}

		pe := curr.PredEdges[minID]
		pred, _ := ss.Table.Get(pe.From)
		prim, err := env.ForwardAction(pred.Coord, pe.ActionID)
		if err != nil {
			// The chosen edge was finite-cost and its predecessor was in
			// the table, so ForwardAction failing here means the
			// environment can't reproduce an edge it already reported
			// through Successors. Treat that the same as an unreachable
			// start: stop with the partial chain rather than silently
			// dropping a step from Primitives.
			chain = append(chain, pred)
			return environ.Trajectory[Pr]{Primitives: revPrims(prims)}, revChain(chain), false
		}
		prims = append(prims, prim)

		curr = pred
		chain = append(chain, curr)
		if curr.Key == startKey {
			break
		}
	}

	reached := curr.Key == startKey
	return environ.Trajectory[Pr]{Primitives: revPrims(prims)}, revChain(chain), reached
}

func revPrims[Pr any](prims []Pr) []Pr {
	reverseSlice(prims)
	return prims
}

func revChain[K comparable, C core.TimedCoord](chain []*core.Node[K, C]) []*core.Node[K, C] {
	reverseSlice(chain)
	return chain
}

// traceLog renders a partial chain, as traceBack returns it (farthest
// predecessor reached first, goal last), as diagnostic strings for a
// failed trace-back.
func traceLog[K comparable, C core.TimedCoord](chain []*core.Node[K, C]) []string {
	log := make([]string, len(chain))
	for i, n := range chain {
		log[i] = fmt.Sprintf("%v", n.Key)
	}

	return log
}
