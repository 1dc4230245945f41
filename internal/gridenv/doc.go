// Package gridenv implements a small 4-connected integer-grid
// environ.Environment, used by graphsearch's tests to exercise Astar
// and LPAstar against concrete, hand-checkable scenarios: every move
// advances the coordinate's time by a fixed step, and a cell can be
// independently blocked to model an obstacle.
package gridenv
