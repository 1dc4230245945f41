// Package pqueue implements a min-priority queue with stable handles.
//
// Queue[P] holds (Priority, payload P) pairs and returns a Handle for
// every pushed entry. The handle stays valid across Decrease/Increase
// calls that reorder the underlying heap, so callers never need to
// re-locate an entry after a key change, which is exactly what the
// graph-search core needs to keep a Node's HeapHandle field accurate
// through repeated relaxations.
//
// Priority is a two-component key compared lexicographically: Primary
// first, Secondary as a tie-break. Plain A* callers only ever set
// Primary (Secondary stays zero for every entry, so equal Primary
// values are ordered by the heap's internal layout, which is
// deterministic for a given sequence of operations but is not
// insertion order); LPA*
// callers use both components as a lexicographic priority pair.
// Hiding both behind one Priority type lets the queue itself stay
// ignorant of which search mode is driving it.
//
// Implementation: a binary heap (container/heap) over a slice of
// *Item[P], each tracking its own slice index so Decrease/Increase can
// call heap.Fix in O(log n) instead of a linear scan. This is the same
// index-tracking-swap technique as a textbook indexed binary heap;
// Push/Pop/Fix never touch payload fields, so the queue only ever
// touches its payload through the caller-supplied reference.
//
// Complexity:
//
//	- Push, PopMin, Decrease, Increase, Update, Remove: O(log n).
//	- Top, Len, Empty: O(1).
//	- Space: O(n) for n currently-queued items.
//
// When to use: one Queue per StateSpace, created once by statespace.New
// and never touched directly by callers outside this module; a
// caller's own code only ever sees Handle values stashed on
// core.Node.HeapHandle, never a Queue reference.
//
// Errors (sentinel):
//
//	- ErrEmpty     Top or PopMin called on a queue with no items.
//	- ErrNotQueued Decrease, Increase, Update, or Remove called with a
//	  handle that no longer identifies a slot in this queue (already
//	  popped or removed).
package pqueue
