package gridenv

import (
	"errors"
	"math"
)

// ErrOutOfBounds indicates a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("gridenv: coordinate out of bounds")

// Coord is a 4-connected grid state: integer cell plus a time
// coordinate that advances by Dt on every move. It is comparable, so
// it doubles as its own Key in a graphsearch.GraphSearch[Coord, Coord, Primitive].
type Coord struct {
	X, Y int
	T    float64
}

// Time implements core.TimedCoord.
func (c Coord) Time() float64 { return c.T }

// Primitive is the minimal motion primitive gridenv reconstructs via
// ForwardAction: a straight unit-cost step between two adjacent cells.
type Primitive struct {
	From, To Coord
	ActionID int
}

// neighborOffsets is a precomputed 4-connectivity table (N, E, S, W),
// indexed by action ID.
var neighborOffsets = [4][2]int{
	{0, -1}, // N
	{1, 0},  // E
	{0, 1},  // S
	{-1, 0}, // W
}

// Grid is a 4-connected integer grid with unit-cost moves and a fixed
// per-move time step. Blocked cells report +Inf cost on any primitive
// that would enter them.
type Grid struct {
	width, height int
	dt            float64
	goal          [2]int
	blocked       map[[2]int]bool
}

// New returns a Grid of the given dimensions, per-move time step dt,
// and goal cell.
func New(width, height int, dt float64, goalX, goalY int) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		dt:      dt,
		goal:    [2]int{goalX, goalY},
		blocked: make(map[[2]int]bool),
	}
}

// Block marks (x, y) as an obstacle: any primitive entering it costs
// +Inf.
func (g *Grid) Block(x, y int) { g.blocked[[2]int{x, y}] = true }

// Unblock clears a previously blocked cell, the counterpart used by
// replanning scenarios.
func (g *Grid) Unblock(x, y int) { delete(g.blocked, [2]int{x, y}) }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsGoal reports whether coord's cell matches the configured goal,
// ignoring time.
func (g *Grid) IsGoal(coord Coord) bool {
	return coord.X == g.goal[0] && coord.Y == g.goal[1]
}

// Heuristic returns the Manhattan distance to the goal cell.
func (g *Grid) Heuristic(coord Coord) float64 {
	return math.Abs(float64(coord.X-g.goal[0])) + math.Abs(float64(coord.Y-g.goal[1]))
}

// Successors returns every in-bounds 4-connected neighbor of coord,
// one time step later. A neighbor cell that is blocked is still
// reported (so PredEdges/SuccEdges bookkeeping sees it) but with cost
// +Inf: a feasible-but-blocked primitive is skipped by the search
// loop, not hidden from the successor set.
func (g *Grid) Successors(coord Coord) (coords []Coord, keys []Coord, costs []float64, actionIDs []int) {
	for actionID, off := range neighborOffsets {
		nx, ny := coord.X+off[0], coord.Y+off[1]
		if !g.inBounds(nx, ny) {
			continue
		}
		next := Coord{X: nx, Y: ny, T: coord.T + g.dt}
		cost := 1.0
		if g.blocked[[2]int{nx, ny}] {
			cost = math.Inf(1)
		}
		coords = append(coords, next)
		keys = append(keys, next)
		costs = append(costs, cost)
		actionIDs = append(actionIDs, actionID)
	}

	return coords, keys, costs, actionIDs
}

// ForwardAction reconstructs the primitive that actionID applies from
// coord, without re-deriving it from Successors.
func (g *Grid) ForwardAction(coord Coord, actionID int) (Primitive, error) {
	if actionID < 0 || actionID >= len(neighborOffsets) {
		return Primitive{}, ErrOutOfBounds
	}
	off := neighborOffsets[actionID]
	to := Coord{X: coord.X + off[0], Y: coord.Y + off[1], T: coord.T + g.dt}
	if !g.inBounds(to.X, to.Y) {
		return Primitive{}, ErrOutOfBounds
	}

	return Primitive{From: coord, To: to, ActionID: actionID}, nil
}
