package core

import (
	"math"

	"github.com/mplab-go/kinosearch/pqueue"
)

// TimedCoord is the continuous state associated with a Key. Coord
// implementations carry whatever tuple the environment needs
// (position, velocity, acceleration, yaw, ...); the search core only
// ever reads the monotonically non-decreasing time component, used by
// the time-horizon cap.
type TimedCoord interface {
	Time() float64
}

// PredEdge records one discovered incoming edge (pred -> this node).
type PredEdge[K comparable] struct {
	From       K
	ActionID   int
	ActionCost float64
}

// SuccEdge records one discovered outgoing edge (this node -> succ).
// SuccCoord is cached so LPA* can reuse a node's successor set across
// plan() calls without re-invoking the environment.
type SuccEdge[K comparable, C TimedCoord] struct {
	To         K
	ActionID   int
	ActionCost float64
	SuccCoord  C
}

// Node is the per-state search record owned by a NodeTable. G, Rhs,
// and H hold cost-to-come, one-step lookahead, and heuristic; Opened
// and Closed are the iteration flags a search loop toggles; HeapHandle
// is the node's last queue handle, nil until it is first pushed.
//
// PredEdges and SuccEdges store Keys, never direct node references,
// so the cyclic logical graph never becomes a cyclic ownership graph:
// only the NodeTable owns *Node values.
type Node[K comparable, C TimedCoord] struct {
	Key   K
	Coord C

	G   float64
	Rhs float64
	H   float64

	// HeapHandle is set when the node is pushed and cleared by
	// StateSpace.UpdateNode. A node popped by a search loop keeps its
	// old, no longer queued handle, so Queued, not a nil check, reports
	// whether the node has a live entry in the search queue.
	HeapHandle pqueue.Handle[*Node[K, C]]

	Opened bool
	Closed bool

	PredEdges []PredEdge[K]
	SuccEdges []SuccEdge[K, C]
}

// newNode constructs a fresh node with G and Rhs both initialized to
// +Inf.
func newNode[K comparable, C TimedCoord](key K, coord C) *Node[K, C] {
	return &Node[K, C]{
		Key:   key,
		Coord: coord,
		G:     math.Inf(1),
		Rhs:   math.Inf(1),
		H:     math.Inf(1), // overwritten by the caller once the node is created; see NodeTable.GetOrCreate
	}
}

// Consistent reports whether the node's g and rhs values agree. Nodes
// with G != Rhs are inconsistent and, in LPA* mode, must be queued.
func (n *Node[K, C]) Consistent() bool { return n.G == n.Rhs }

// Queued reports whether the node currently holds a live queue entry.
func (n *Node[K, C]) Queued() bool {
	return n.HeapHandle != nil && n.HeapHandle.Queued()
}
