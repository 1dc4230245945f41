package statespace

// Mode selects which priority formula StateSpace.Priority uses.
// Both A* and LPA* share the same queue and table; only the priority
// function and update_node behavior differ between modes.
type Mode int

const (
	// ModeAstar computes priority as g + eps*h.
	ModeAstar Mode = iota
	// ModeLPA computes priority as the lexicographic pair
	// (min(g, rhs) + eps*h, min(g, rhs)).
	ModeLPA
)

// Options configures a StateSpace. Use DefaultOptions as a starting
// point and layer functional Options on top.
type Options struct {
	// Eps is the heuristic inflation factor, eps >= 1 for bounded
	// suboptimality guarantees. Eps == 0 is a documented sentinel that
	// disables the heuristic entirely (treated as 0 everywhere).
	Eps float64

	// Dt is the primitive time step. It is stored on the StateSpace
	// only; neither the search loops nor the trace-back read it.
	Dt float64

	// MaxT is the time horizon TimeAllowed checks: UpdateNode queues no
	// node whose time exceeds it. MaxT <= 0 disables the cap. LPAstar
	// overwrites it with its Termination's MaxT on every call, and
	// Astar does not read it.
	MaxT float64

	// Mode selects the A* or LPA* priority formula.
	Mode Mode
}

// DefaultOptions returns Eps=1 (plain, unweighted A*), Dt=0, MaxT=0
// (disabled), Mode=ModeAstar.
func DefaultOptions() Options {
	return Options{Eps: 1, Dt: 0, MaxT: 0, Mode: ModeAstar}
}

// Option is a functional option over Options.
type Option func(*Options)

// WithEpsilon sets the heuristic inflation factor. Panics if eps < 0;
// eps == 0 is the valid "no heuristic" sentinel.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(ErrNegativeEpsilon.Error())
	}
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithDt sets the primitive time step stored on the StateSpace.
// Panics if dt < 0.
func WithDt(dt float64) Option {
	if dt < 0 {
		panic(ErrNegativeDt.Error())
	}
	return func(o *Options) {
		o.Dt = dt
	}
}

// WithMaxT sets the time-horizon cap. maxT <= 0 disables the cap.
func WithMaxT(maxT float64) Option {
	return func(o *Options) { o.MaxT = maxT }
}

// WithMode selects the priority formula (ModeAstar or ModeLPA).
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}
