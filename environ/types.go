package environ

import "github.com/mplab-go/kinosearch/core"

// Environment is the read-only, synchronous collaborator the search
// core queries. K is the Key type, C the Coord type, and Pr the
// caller's motion-primitive type, opaque to the core beyond what
// ForwardAction returns.
//
// Successors returns four parallel slices of equal length: coords,
// keys, costs, and action IDs for every dynamically feasible
// successor of coord. A cost of +Inf marks an obstacle-blocked
// primitive that the core must skip without discarding the
// (coord, key, actionID) triple's existence: the successor was
// feasible to generate, just not traversable.
type Environment[K comparable, C core.TimedCoord, Pr any] interface {
	// IsGoal reports whether coord satisfies the goal predicate.
	IsGoal(coord C) bool

	// Heuristic returns a non-negative estimate of the cost from coord
	// to the goal. Admissible for A* optimality; consistent for
	// single-expansion (no reopen) A*.
	Heuristic(coord C) float64

	// Successors expands coord into its dynamically feasible
	// successors. Implementations must return four slices of equal
	// length; a cost of +Inf denotes a blocked edge.
	Successors(coord C) (coords []C, keys []K, costs []float64, actionIDs []int)

	// ForwardAction reproduces the motion primitive originally used to
	// derive a successor from a parent coordinate.
	ForwardAction(coord C, actionID int) (Pr, error)
}

// Trajectory is an ordered, start-to-goal sequence of primitives.
type Trajectory[Pr any] struct {
	Primitives []Pr
}

// Empty reports whether the trajectory carries no primitives, which
// is the correct result when the start already satisfies the goal.
func (t Trajectory[Pr]) Empty() bool { return len(t.Primitives) == 0 }
