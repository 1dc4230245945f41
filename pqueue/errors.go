package pqueue

import "errors"

// Sentinel errors for indexed priority queue operations.
var (
	// ErrEmpty indicates Top or PopMin was called on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrNotQueued indicates Decrease or Increase was called with a
	// handle to an item that is no longer present in this queue.
	ErrNotQueued = errors.New("pqueue: handle is not queued")
)
