package search

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hartcorrin/cdcl/internal/core"
)

// Result is the outcome of a Run call.
type Result int

const (
	Unknown Result = iota
	Sat
	Unsat
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Search drives a core.State to completion: it selects decision literals,
// feeds conflicts back through assertion, and applies the restart and
// ReduceDB policies that Options describes. None of this lives in the core
// package, which only ever reacts to the Decide/AssertClause/Undo calls a
// driver like this one makes.
type Search struct {
	state *core.State
	order *VarOrder
	opts  Options

	metrics *Metrics
	log     *logrus.Logger

	// Model is populated by Run once a satisfying assignment is found.
	Model []bool
}

// New returns a Search ready to run over state. log may be nil, in which
// case a disabled logger is used.
func New(state *core.State, opts Options, metrics *Metrics, log *logrus.Logger) *Search {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Search{
		state:   state,
		order:   NewVarOrder(state.NumVars(), opts.ScoreDecay, opts.PhaseSaving),
		opts:    opts,
		metrics: metrics,
		log:     log,
	}
}

// Run searches until a result is reached, ctx is cancelled, or the conflict
// budget in Options is exhausted. Run must not be called again on a Search
// that has already returned Sat or Unsat.
func (se *Search) Run(ctx context.Context) Result {
	if se.state.IsUnsat() {
		return Unsat
	}

	restartLimit := se.opts.RestartBase
	conflictsSinceRestart := 0
	conflictsSinceReduce := 0
	totalConflicts := 0

	for {
		select {
		case <-ctx.Done():
			se.log.WithField("reason", ctx.Err()).Info("search stopped")
			return Unknown
		default:
		}

		if se.opts.MaxConflicts > 0 && totalConflicts >= se.opts.MaxConflicts {
			se.log.WithField("max_conflicts", se.opts.MaxConflicts).Info("conflict budget exhausted")
			return Unknown
		}

		if se.allAssigned() {
			se.saveModel()
			return Sat
		}

		trailLen := len(se.state.Trail())
		lit := se.order.NextDecision(se.state)
		se.metrics.Decisions.Inc()
		conflict := se.state.Decide(lit)
		se.recordPropagations(trailLen)

		for conflict != nil {
			if conflict == core.FalseClause {
				return Unsat
			}

			totalConflicts++
			conflictsSinceRestart++
			conflictsSinceReduce++
			se.metrics.Conflicts.Inc()
			se.metrics.LearnedSize.Observe(float64(len(conflict.Literals())))

			for _, l := range conflict.Literals() {
				se.order.BumpScore(l.VarID())
			}
			se.order.DecayScores()

			for !se.state.AtAssertionLevel(conflict) {
				se.undoDecideWithReinsert()
			}
			trailLen = len(se.state.Trail())
			conflict = se.state.AssertClause(conflict)
			se.recordPropagations(trailLen)
		}

		if conflictsSinceRestart >= restartLimit {
			se.restart()
			conflictsSinceRestart = 0
			restartLimit = int(float64(restartLimit) * se.opts.RestartFactor)
			se.metrics.Restarts.Inc()
		}

		if se.opts.ReduceDBInterval > 0 && conflictsSinceReduce >= se.opts.ReduceDBInterval {
			se.reduceDB()
			conflictsSinceReduce = 0
		}
	}
}

// recordPropagations counts the literals BCP forced onto the trail beyond
// the single decision or asserting literal that triggered it (trail growth
// since beforeLen, minus that one literal), and adds them to the
// propagation counter. A clamp at zero covers the case where the literal
// was already true and enqueue was a no-op.
func (se *Search) recordPropagations(beforeLen int) {
	forced := len(se.state.Trail()) - beforeLen - 1
	se.metrics.Propagations.Add(float64(max(0, forced)))
}

// allAssigned reports whether every variable has a value: the trail holds
// exactly one literal per assigned variable, so its length is the assigned
// count directly.
func (se *Search) allAssigned() bool {
	return len(se.state.Trail()) == se.state.NumVars()
}

func (se *Search) saveModel() {
	se.Model = make([]bool, se.state.NumVars())
	for i := range se.Model {
		se.Model[i] = se.state.Variable(i).Value()
	}
}

// restart unwinds every decision level back to the root, giving the
// variable order a fresh choice of decision variable without discarding any
// learnt clause.
func (se *Search) restart() {
	se.log.WithField("level", se.state.DecisionLevel()).Debug("restarting")
	for se.state.DecisionLevel() > 1 {
		se.undoDecideWithReinsert()
	}
}

// undoDecideWithReinsert undoes the current decision level and makes every
// variable it freed a candidate decision again, saving the phase it had
// just before being undone.
func (se *Search) undoDecideWithReinsert() {
	before := append([]core.Literal(nil), se.state.Trail()...)
	se.state.UndoDecide()
	freed := before[len(se.state.Trail()):]
	for _, lit := range freed {
		se.order.Reinsert(lit.VarID(), lit.IsPositive())
	}
}

// reduceDB reports how many learnt clauses are reduction candidates: ones
// in the lower (older, by assertion order) half of the learnt store that
// are not currently the reason for an assignment on the trail. The core
// exposes no clause-removal operation, so this is a logging checkpoint
// rather than an actual deletion; see the design notes for why.
func (se *Search) reduceDB() {
	n := se.state.LearnedClauseCount()
	if n < 2 {
		return
	}

	locked := make(map[int]bool)
	for _, lit := range se.state.Trail() {
		v := se.state.Variable(lit.VarID())
		if r := v.ImpliedBy(); r != nil && r.IsLearnt() {
			locked[r.ID()] = true
		}
	}

	candidates := 0
	for i := 0; i < n/2; i++ {
		c := se.state.LearnedClause(i)
		if !locked[c.ID()] {
			candidates++
		}
	}

	se.log.WithFields(logrus.Fields{
		"learnt_total":         n,
		"reduction_candidates": candidates,
	}).Info("reduceDB checkpoint")
}
