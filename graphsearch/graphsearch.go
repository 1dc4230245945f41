package graphsearch

import (
	"log"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/environ"
)

// GraphSearch runs A* and LPA* main loops over a shared StateSpace. It
// holds no per-search state itself: everything mutable lives on the
// StateSpace and NodeTable passed to each call, so a single GraphSearch
// value can drive any number of independent state spaces.
type GraphSearch[K comparable, C core.TimedCoord, Pr any] struct {
	cfg Config
}

// New returns a GraphSearch configured by cfg.
func New[K comparable, C core.TimedCoord, Pr any](cfg Config) *GraphSearch[K, C, Pr] {
	return &GraphSearch[K, C, Pr]{cfg: cfg}
}

func (gs *GraphSearch[K, C, Pr]) logf(format string, args ...any) {
	if gs.cfg.Verbose {
		log.Printf(format, args...)
	}
}

// callSuccessors invokes env.Successors and validates the four
// returned slices share one length, since the loops below zip them by
// index.
func callSuccessors[K comparable, C core.TimedCoord, Pr any](env environ.Environment[K, C, Pr], coord C) (coords []C, keys []K, costs []float64, actionIDs []int, err error) {
	coords, keys, costs, actionIDs = env.Successors(coord)
	n := len(coords)
	if len(keys) != n || len(costs) != n || len(actionIDs) != n {
		return nil, nil, nil, nil, ErrSuccessorArity
	}

	return coords, keys, costs, actionIDs, nil
}

// hasPred reports whether n already records an incoming edge from
// fromKey. Comparison ignores action ID: a state space is assumed to
// expose at most one action between any ordered pair of coordinates.
func hasPred[K comparable, C core.TimedCoord](n *core.Node[K, C], fromKey K) bool {
	for _, pe := range n.PredEdges {
		if pe.From == fromKey {
			return true
		}
	}

	return false
}

func reverseSlice[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
