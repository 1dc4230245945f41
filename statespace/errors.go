package statespace

import "errors"

// Sentinel errors for statespace configuration.
var (
	// ErrNegativeEpsilon indicates a negative epsilon was supplied.
	// Zero is the documented "heuristic disabled" sentinel; anything
	// below zero is a configuration mistake.
	ErrNegativeEpsilon = errors.New("statespace: epsilon must be >= 0")

	// ErrNegativeDt indicates a negative primitive time step.
	ErrNegativeDt = errors.New("statespace: dt must be >= 0")
)
