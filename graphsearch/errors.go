package graphsearch

import "errors"

// ErrSuccessorArity indicates an Environment.Successors call returned
// slices of mismatched length, which the search loop cannot safely
// zip together.
var ErrSuccessorArity = errors.New("graphsearch: successor slices have mismatched length")
