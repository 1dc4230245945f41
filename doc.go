// Package kinosearch is a graph-search core for kinodynamic motion
// planning: an A* and Lifelong Planning A* (LPA*) engine over an
// implicitly enumerated state space of discretized robot configurations
// connected by short, dynamically feasible motion primitives.
//
// What is kinosearch?
//
//	A single-threaded, in-memory search core that brings together:
//		• core: Key/Coord/Node records and the persistent NodeTable
//		• pqueue: a stable-handle indexed min-priority queue
//		• statespace: the shared queue+table+parameters LPA* warm-restarts against
//		• graphsearch: the A* and LPA* main loops and trace-back
//		• environ: the Environment interface the search consumes
//
// Why kinosearch?
//
//   - Incremental replanning: a StateSpace persists across plan() calls
//     so LPA* only re-expands what an edge-cost change actually invalidated.
//   - Inconsistent-heuristic tolerant: re-open via increase/decrease is a
//     first-class queue operation, not a special case.
//   - Pure Go: no cgo, no hidden deps beyond testify for tests.
//
// kinosearch does not implement the motion-primitive algebra, map or
// occupancy utilities, the planner wrapper that configures start/goal,
// visualization, map I/O, or a CLI: those are external collaborators.
//
//	go get github.com/mplab-go/kinosearch/graphsearch
package kinosearch
