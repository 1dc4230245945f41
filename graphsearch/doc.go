// Package graphsearch implements the A* and Lifelong Planning A*
// (LPA*) main loops and the trace-back that reconstructs an optimal
// primitive sequence from a StateSpace's node table.
//
// Astar runs a classic weighted best-first search with lazy successor
// discovery and multi-parent bookkeeping; predecessors are appended
// without deduplication, and traceBack (traceback.go) chooses among
// every recorded predecessor edge. LPAstar runs the
// incremental variant: it assumes the caller has already applied any
// environment change and invoked StateSpace.UpdateNode on every
// directly affected node before calling LPAstar again, and it reuses
// whatever queue/table state survives from the previous call.
//
// Diagnostics: GraphSearch carries a verbose flag; when enabled it
// logs expansion counts and termination reasons through the standard
// log package rather than raw stdout prints.
//
// Complexity: both Astar and LPAstar are O((V + E) log V) over the
// portion of the state space actually discovered by the search, V
// being the number of distinct coordinates reached and E the number
// of successor edges expanded across them, the log V factor coming
// from pqueue's heap operations. LPAstar's incremental replans are
// typically far cheaper in practice: only nodes whose priority
// actually changed since the last call are pushed back onto the
// queue, but the worst case (every node's cost changed) is the same
// bound as a cold Astar run.
//
// When to use: call Astar for a one-shot plan with no expectation of
// replanning. Call LPAstar when the same StateSpace will be replanned
// repeatedly after localized edge-cost changes (a moving obstacle, a
// refined cost estimate) and reusing the previous run's frontier is
// worth the extra bookkeeping LPA* requires from the caller (applying
// changes and calling UpdateNode before each subsequent LPAstar call).
//
// Errors (sentinel):
//
//	- ErrSuccessorArity Environment.Successors returned coords/keys/
//	  costs/actionIDs slices of unequal length, which the search loop
//	  cannot safely zip together. This is the one true error either
//	  loop returns; every other outcome, success or failure, comes back
//	  through Result so callers never need to distinguish "no path
//	  exists" from "an exception happened".
package graphsearch
