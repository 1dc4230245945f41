package statespace_test

import (
	"fmt"

	"github.com/mplab-go/kinosearch/core"
	"github.com/mplab-go/kinosearch/statespace"
)

// ExampleStateSpace_Priority shows how epsilon inflation changes a
// node's A*-mode priority (g + eps*h).
func ExampleStateSpace_Priority() {
	ss := statespace.New[string, coord](statespace.WithEpsilon(1.5))
	n := &core.Node[string, coord]{G: 2, H: 4}
	p := ss.Priority(n)
	fmt.Println(p.Primary)
	// Output: 8
}

// ExampleStateSpace_EvalHeuristic shows the eps==0 sentinel: the
// heuristic is disabled entirely rather than merely zero-weighted.
func ExampleStateSpace_EvalHeuristic() {
	ss := statespace.New[string, coord](statespace.WithEpsilon(0))
	fmt.Println(ss.HeuristicEnabled(), ss.EvalHeuristic(123))
	// Output: false 0
}
