// Package core defines the central Key/Coord/Node record types and the
// NodeTable that owns them for the kinosearch graph-search core.
//
// A Node is the per-state search record: a best known cost-to-come
// (G), an LPA* one-step lookahead (Rhs), a heuristic fixed at creation
// (H), a heap handle when queued, iteration flags, and the
// predecessor/successor edge lists that make trace-back and
// incremental replanning possible. Nodes are created on first
// reference and never removed; a NodeTable only grows for the lifetime
// of the StateSpace that owns it.
//
// core has no notion of A*, LPA*, or priorities; those live in
// statespace and graphsearch. It is deliberately the narrowest layer:
// a typed, hash-based get-or-create map plus the record shape every
// higher layer shares.
//
// Key is any comparable type the environment chooses to identify a
// discretized state (position/velocity/acceleration/time/yaw tuples
// are typical); Coord is the associated continuous state and must
// expose a monotonically non-decreasing Time() component so the core
// can enforce the time-horizon cap without knowing the concrete
// coordinate shape.
//
// Complexity:
//
//	- GetOrCreate, Get: O(1) amortized (backed by a Go map keyed on K).
//	- Space: O(N) where N is the number of distinct states any search
//	  over this table has ever referenced, keys and successors alike;
//	  a NodeTable never shrinks.
//
// When to use: never directly by a caller planning a search. A
// NodeTable is created once by statespace.New and threaded through
// every graphsearch call for the lifetime of a StateSpace; the only
// reason to touch core's exported surface directly is inspecting a
// Node after a search (PredEdges, SuccEdges, HeapHandle) for
// diagnostics or replay.
//
// Errors: none. Every core operation is total; GetOrCreate always
// succeeds because it constructs a fresh Node (G, Rhs and H at +Inf)
// on first reference,
// and Get's failure mode is a plain (nil, false), not a sentinel.
package core
