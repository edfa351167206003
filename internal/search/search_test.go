package search

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartcorrin/cdcl/internal/core"
)

// cnf builds a core.CNF over n variables from clauses given as signed ints,
// 1-indexed: a positive int k means the positive literal of variable k-1, a
// negative int -k its negation.
func cnf(n int, clauses ...[]int) core.CNF {
	out := core.CNF{NumVars: n}
	for _, c := range clauses {
		cl := make([]core.Literal, len(c))
		for i, v := range c {
			if v > 0 {
				cl[i] = core.PositiveLiteral(v - 1)
			} else {
				cl[i] = core.NegativeLiteral(-v - 1)
			}
		}
		out.Clauses = append(out.Clauses, cl)
	}
	return out
}

func newMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(prometheus.NewRegistry())
}

func checkModel(t *testing.T, problem core.CNF, model []bool) {
	t.Helper()
	for _, clause := range problem.Clauses {
		satisfied := false
		for _, l := range clause {
			if model[l.VarID()] == l.IsPositive() {
				satisfied = true
				break
			}
		}
		assert.Truef(t, satisfied, "clause %v not satisfied by model %v", clause, model)
	}
}

func TestRun_SatisfiableInstance(t *testing.T) {
	problem := cnf(3,
		[]int{1, 2, 3},
		[]int{-1, 2},
		[]int{-2, 3},
	)
	s := core.New(problem)
	se := New(s, DefaultOptions(), newMetrics(t), nil)

	result := se.Run(context.Background())
	require.Equal(t, Sat, result)
	require.Len(t, se.Model, 3)
	checkModel(t, problem, se.Model)
}

func TestRun_UnsatisfiableInstance(t *testing.T) {
	s := core.New(cnf(2,
		[]int{1, 2},
		[]int{1, -2},
		[]int{-1, 2},
		[]int{-1, -2},
	))
	se := New(s, DefaultOptions(), newMetrics(t), nil)

	result := se.Run(context.Background())
	assert.Equal(t, Unsat, result)
}

func TestRun_RootLevelConflictIsUnsatWithoutDeciding(t *testing.T) {
	s := core.New(cnf(1, []int{1}, []int{-1}))
	se := New(s, DefaultOptions(), newMetrics(t), nil)

	assert.Equal(t, Unsat, se.Run(context.Background()))
}

func TestRun_MaxConflictsStopsWithUnknown(t *testing.T) {
	// A satisfiable instance (both variables false) on which the first
	// decision, whichever variable it picks with the default positive
	// phase, conflicts at once, and asserting the learnt unit clause does
	// not conflict: with a budget of one conflict the search gives up
	// instead of finishing.
	s := core.New(cnf(2,
		[]int{-1, 2},
		[]int{-1, -2},
		[]int{-2, 1},
		[]int{-2, -1},
	))
	opts := DefaultOptions()
	opts.MaxConflicts = 1
	se := New(s, opts, newMetrics(t), nil)

	result := se.Run(context.Background())
	assert.Equal(t, Unknown, result)
}

func TestRun_ContextCancelledReturnsUnknown(t *testing.T) {
	s := core.New(cnf(4,
		[]int{1, 2, 3, 4},
		[]int{-1, 2},
		[]int{-2, 3},
		[]int{-3, 4},
	))
	se := New(s, DefaultOptions(), newMetrics(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, Unknown, se.Run(ctx))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
}
