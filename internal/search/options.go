package search

// Options configures the driver loop built on top of the core engine: the
// core itself has no notion of restarts, branching heuristics or conflict
// budgets, so every policy knob the original solver exposed through flat
// fields now lives here instead.
type Options struct {
	// ScoreDecay is the VSIDS activity decay factor in (0, 1]; lower decays
	// favor recently-implicated variables more strongly.
	ScoreDecay float64

	// PhaseSaving replays each variable's last assigned sign when it is
	// redecided, rather than always defaulting to true.
	PhaseSaving bool

	// RestartBase and RestartFactor parameterize a geometric restart
	// schedule: the n-th restart fires after RestartBase *
	// RestartFactor^n conflicts since the previous restart.
	RestartBase   int
	RestartFactor float64

	// ReduceDBInterval is how many conflicts elapse between ReduceDB
	// checkpoints, where the learnt clauses in the older half of the store
	// that are not currently a reason on the trail are logged as reduction
	// candidates.
	ReduceDBInterval int

	// MaxConflicts stops the search and reports unknown once this many
	// conflicts have occurred. A value of 0 means unlimited.
	MaxConflicts int
}

// DefaultOptions returns the options the CLI uses absent any overrides.
func DefaultOptions() Options {
	return Options{
		ScoreDecay:       0.95,
		PhaseSaving:      true,
		RestartBase:      100,
		RestartFactor:    1.5,
		ReduceDBInterval: 2000,
		MaxConflicts:     0,
	}
}
