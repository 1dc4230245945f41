package statespace

import "math"

// Termination bundles the two advisory caps a search loop checks
// after every expansion. Both are advisory: MaxExpand <= 0 disables
// the expansion cap and MaxT <= 0 disables the time-horizon cap.
type Termination struct {
	MaxExpand int
	MaxT      float64
}

// ExpansionCapReached reports whether expansions has reached the
// configured cap.
func (t Termination) ExpansionCapReached(expansions int) bool {
	return t.MaxExpand > 0 && expansions >= t.MaxExpand
}

// TimeHorizonReached reports whether a node at time coordT with
// cost-to-come g should be treated as a horizon-terminal success:
// the horizon is configured, coordT has reached it, and g is finite.
func (t Termination) TimeHorizonReached(coordT, g float64) bool {
	return t.MaxT > 0 && coordT >= t.MaxT && !math.IsInf(g, 1)
}
