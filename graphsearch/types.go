package graphsearch

// Reason names why a search loop stopped. Exactly one Reason
// accompanies every Result, success or failure.
type Reason int

const (
	// ReasonUnknown is the zero value, returned only in the empty
	// Result that accompanies a non-nil error.
	ReasonUnknown Reason = iota
	// ReasonAlreadyAtGoal: the start coordinate already satisfies the
	// goal predicate; the search never opened a node.
	ReasonAlreadyAtGoal
	// ReasonGoalReached: a goal node was expanded (Astar), or the LPA*
	// goal candidate satisfies the goal predicate. That candidate's cost
	// can be +Inf after a replan cuts it off, and Success is then false.
	ReasonGoalReached
	// ReasonTimeHorizon: the search stopped at the configured time
	// horizon before reaching an actual goal state.
	ReasonTimeHorizon
	// ReasonExpansionCap: the configured expansion cap was reached
	// before a goal or horizon node was found.
	ReasonExpansionCap
	// ReasonQueueExhausted: the frontier emptied with no reachable
	// goal, meaning the goal is unreachable from the current state.
	ReasonQueueExhausted
)

// String renders a human-readable reason, used by verbose logging.
func (r Reason) String() string {
	switch r {
	case ReasonAlreadyAtGoal:
		return "already-at-goal"
	case ReasonGoalReached:
		return "goal-reached"
	case ReasonTimeHorizon:
		return "time-horizon"
	case ReasonExpansionCap:
		return "expansion-cap"
	case ReasonQueueExhausted:
		return "queue-exhausted"
	default:
		return "unknown"
	}
}

// Result reports how a plan() call ended. All outcomes, including
// failures, are reported through Result rather than an error; error is
// reserved for misuse the caller's Environment is responsible for (see
// ErrSuccessorArity).
type Result struct {
	Success bool
	Reason  Reason

	// ExpandIterations is the number of nodes popped and expanded
	// during this call.
	ExpandIterations int

	// TraceLog is populated only when trace-back failed to reach the
	// start node from the reported goal candidate; it names the nodes
	// on the partial walk, ordered from the farthest predecessor
	// actually reached to the goal, for diagnostics.
	TraceLog []string
}

// Config configures a GraphSearch instance: a verbose logging flag
// plus one documented compatibility knob.
type Config struct {
	// Verbose enables diagnostic logging of expansion counts and
	// termination reasons through the standard log package.
	Verbose bool

	// CompatGoalCandidate reproduces the historical LPA* goal-candidate
	// update condition (is_goal(u) || max_t > 0), which promotes every
	// expanded node to goal candidate once any time horizon is
	// configured, not just nodes that actually reach the horizon. It
	// defaults to false, which ships the corrected condition
	// (is_goal(u) || (max_t > 0 && u reaches or exceeds it)) instead.
	CompatGoalCandidate bool
}
