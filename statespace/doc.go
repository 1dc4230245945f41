// Package statespace implements the StateSpace shared by the A* and
// LPA* search loops: the queue, the node table, the search
// parameters, and the priority/update-node logic that both search
// modes drive.
//
// A StateSpace is created once and reused across successive plan()
// calls so LPA* can warm-restart: nothing about the table or queue is
// reset between calls, only the caller's edge-cost changes (applied
// externally, then reported via UpdateNode) move the frontier.
//
// Concurrency: a StateSpace is a plain mutable object with no locking.
// It must not be used from more than one goroutine at a time, and a
// call to a GraphSearch method must fully return before another call
// on the same StateSpace begins; reentrancy is undefined.
//
// Complexity: Priority is O(1). UpdateNode is O(log n) amortized: a
// pqueue.Remove of the old handle (if any) followed by a conditional
// pqueue.Push, both against the shared Queue of size n. minPredCost is
// O(p) in the number of predecessor edges recorded on the node, which
// in a 4-connected grid or similarly bounded-branching environment is
// a small constant.
//
// Options:
//
//	- WithEpsilon(eps)  heuristic inflation factor; eps==0 disables the
//	  heuristic: EvalHeuristic turns every value the environment's
//	  Heuristic returns into 0, so H is 0 for that StateSpace's nodes.
//	- WithDt(dt)        primitive time step, stored on the StateSpace;
//	  neither the search loops nor the trace-back read it.
//	- WithMaxT(maxT)    time horizon UpdateNode enforces; maxT<=0
//	  disables it. LPAstar replaces it with its Termination's MaxT.
//	- WithMode(mode)    ModeAstar or ModeLPA, selecting the priority
//	  formula UpdateNode and Priority both use.
//
// WithEpsilon and WithDt validate eagerly, when the option is built, rather than deferring
// an error to the search call itself, panicking instead of returning
// an error because a negative eps or dt can never be a legitimate
// runtime condition, only a caller mistake.
//
// When to use: one StateSpace per independently-planned problem
// instance (one map, one set of dynamics). LPA* callers keep the same
// StateSpace across replans; A*-only callers can build a fresh one per
// call if warm-starting isn't wanted.
//
// Errors (sentinel):
//
//	- ErrNegativeEpsilon WithEpsilon called with eps < 0; panics rather
//	  than returning, since eps is fixed at construction and a negative
//	  value can never be a caller mistake worth deferring.
//	- ErrNegativeDt      WithDt called with dt < 0, same rationale.
package statespace
