// Package search drives the core engine: it owns decision-variable
// selection, clause-learning bookkeeping beyond the core's own
// subsumption journal, restarts, and the logging and metrics wrapped
// around a solve.
package search

import (
	"github.com/rhartert/yagh"

	"github.com/hartcorrin/cdcl/internal/core"
)

// VarOrder selects the next decision variable using a VSIDS-style activity
// heap: every conflict bumps the score of the variables it touched, and the
// heap always pops the highest-scoring variable that is still unassigned.
type VarOrder struct {
	order *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	// phases records, per variable, the sign it was last assigned so a
	// reinserted variable is redecided the same way it was before being
	// undone (phase saving), rather than always defaulting to positive.
	phases      []bool
	phaseSaving bool
}

// NewVarOrder returns a VarOrder with one entry per variable in [0, numVars),
// all starting with equal score and a positive initial phase.
func NewVarOrder(numVars int, decay float64, phaseSaving bool) *VarOrder {
	vo := &VarOrder{
		order:       yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  decay,
		phases:      make([]bool, numVars),
		phaseSaving: phaseSaving,
	}
	vo.order.GrowBy(numVars)
	for v := 0; v < numVars; v++ {
		vo.scores = append(vo.scores, 0)
		vo.phases[v] = true
		vo.order.Put(v, 0)
	}
	return vo
}

// BumpScore increases v's activity score, rescaling every score (to avoid
// float overflow on long searches) if v's score crosses a high threshold.
func (vo *VarOrder) BumpScore(v int) {
	vo.scores[v] += vo.scoreInc
	if vo.order.Contains(v) {
		vo.order.Put(v, -vo.scores[v])
	}
	if vo.scores[v] > 1e100 {
		vo.rescale()
	}
}

// DecayScores increases the weight future BumpScore calls carry relative to
// past ones, so that variables implicated in recent conflicts are preferred
// over those implicated long ago.
func (vo *VarOrder) DecayScores() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

func (vo *VarOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		vo.scores[v] = sc * 1e-100
		if vo.order.Contains(v) {
			vo.order.Put(v, -vo.scores[v])
		}
	}
}

// Reinsert makes v a candidate decision variable again, recording the value
// it had just before being undone for phase saving.
func (vo *VarOrder) Reinsert(v int, val bool) {
	if vo.phaseSaving {
		vo.phases[v] = val
	}
	vo.order.Put(v, -vo.scores[v])
}

// NextDecision pops the highest-activity unassigned variable from s and
// returns the literal to decide next, using its saved phase. It panics if
// every variable is already assigned: the caller is expected to have
// checked for a complete, conflict-free assignment first.
func (vo *VarOrder) NextDecision(s *core.State) core.Literal {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			panic("search: NextDecision called with no unassigned variable left")
		}
		v := s.Variable(next.Elem)
		if v.IsAssigned() {
			continue
		}
		if vo.phases[next.Elem] {
			return v.PositiveLiteral()
		}
		return v.NegativeLiteral()
	}
}
