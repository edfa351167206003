package core

// noWatch is the sentinel value for Clause.watchB on clauses that own only
// one literal. Such clauses are forced as soon as they are installed (by New
// for an original clause, by AssertClause for a learnt one) and are never
// registered on any literal's watch list, so the watch invariant
// (two distinct, list-registered watches) simply does not apply to them.
const noWatch Literal = -1

// Clause is an ordered bag of literals together with the two literals
// currently designated as its watches. A clause of size one never has a
// second watch; FalseClause (the synthetic unsatisfiability witness) has
// neither.
type Clause struct {
	id int

	// literals holds every literal of the clause. watchA/watchB identify the
	// watched literals by value, not by position, exactly as described by
	// the data model. The order matters only for a learnt clause, whose
	// first literal is the asserting literal AssertClause forces.
	literals []Literal

	watchA Literal
	watchB Literal

	isSubsumed bool
	learnt     bool

	// assertionLevel is meaningful only for learnt clauses (including
	// FalseClause, whose assertionLevel is always 0).
	assertionLevel int
}

// ID returns the clause's identity. Original clauses are numbered from 0 in
// construction order (tautologies and empty clauses are dropped and take no
// number); learnt clauses are numbered n, n+1, ..., where n is the number of
// clauses in the CNF given to New, monotonically as they are recorded, never
// reusing an ID.
func (c *Clause) ID() int { return c.id }

// Literals returns the clause's literal list. Callers must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal { return c.literals }

// IsLearnt reports whether the clause was produced by conflict analysis.
func (c *Clause) IsLearnt() bool { return c.learnt }

// IsSubsumed reports whether the clause currently has a true literal and is
// therefore inactive for propagation purposes.
func (c *Clause) IsSubsumed() bool { return c.isSubsumed }

// AssertionLevel returns the level at which a learnt clause becomes unit
// after backtracking. It is meaningless for non-learnt clauses.
func (c *Clause) AssertionLevel() int { return c.assertionLevel }

// WatchA returns the clause's first watch.
func (c *Clause) WatchA() Literal { return c.watchA }

// WatchB returns the clause's second watch, or noWatch if the clause owns
// only one literal.
func (c *Clause) WatchB() Literal { return c.watchB }

// hasLiteral reports whether lit is a member of the clause.
func (c *Clause) hasLiteral(lit Literal) bool {
	for _, l := range c.literals {
		if l == lit {
			return true
		}
	}
	return false
}

// otherWatch returns the clause's watch other than w. w must be one of the
// clause's two current watches.
func (c *Clause) otherWatch(w Literal) Literal {
	switch w {
	case c.watchA:
		return c.watchB
	case c.watchB:
		return c.watchA
	default:
		panic("core: otherWatch called with a literal that is not a current watch")
	}
}

// replaceWatch swaps the watch currently equal to old for newLit. old must
// be one of the clause's two current watches.
func (c *Clause) replaceWatch(old, newLit Literal) {
	switch old {
	case c.watchA:
		c.watchA = newLit
	case c.watchB:
		c.watchB = newLit
	default:
		panic("core: replaceWatch called with a literal that is not a current watch")
	}
}

// FalseClause is the synthetic unsatisfiability witness returned by
// conflict analysis when a conflict is found at the root level. It owns no
// literals, is never inserted into the learnt-clause list, and is never a
// valid argument to AssertClause: AtAssertionLevel(FalseClause, s) is always
// false, since no level reachable by the core equals its assertion level
// of 0 (the core's level counter starts at 1).
var FalseClause = &Clause{
	id:             -1,
	learnt:         true,
	assertionLevel: 0,
	watchA:         noWatch,
	watchB:         noWatch,
}

// dedupeAndCheckTautology compacts lits in place, dropping duplicate
// literals and reporting whether the clause is a tautology (i.e. contains
// both a literal and its negation, and is therefore always true and can be
// discarded). It never looks at the current assignment: at construction
// time original clauses are added before any propagation has taken place.
func dedupeAndCheckTautology(lits []Literal) (out []Literal, tautology bool) {
	seen := make(map[Literal]struct{}, len(lits))
	size := len(lits)
	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[lits[i].Opposite()]; ok {
			return nil, true
		}
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[lits[i]] = struct{}{}
	}
	return lits[:size], false
}
