// Package environ declares the Environment interface the graph-search
// core consumes, plus the minimal Primitive and Trajectory shapes it
// produces.
//
// The full motion-primitive algebra, the map/occupancy representation
// behind IsGoal and Heuristic, and the planner wrapper that configures
// a concrete Environment are all external collaborators, out of scope
// for this module. Trajectory here is only as detailed as the search
// core itself needs: enough to collect a start-to-goal sequence and
// hand it back to a caller that owns the real primitive representation.
package environ
