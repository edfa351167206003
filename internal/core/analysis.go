package core

// idom walks the dominator chain of a and b, both current-level variables,
// until they meet. Each variable's order field (its index in the
// current-level trail suffix) gives dominators in S a total order matching
// how they were assigned, so repeatedly stepping the later one back through
// its own dominator is guaranteed to terminate at their common ancestor.
func idom(a, b *Variable) *Variable {
	for a != b {
		if a.order > b.order {
			a = a.dominator
		} else {
			b = b.dominator
		}
	}
	return a
}

// BuildAssertingClause runs 1-UIP conflict analysis over the conflict
// recorded by the last call to UnitResolution, using dominators over the
// current decision level's implication subgraph to find the unique
// implication point. It must only be called while a conflict is pending and
// must not be called at the root level (callers detect that case themselves
// and report FalseClause instead, since build_asserting_clause(State) as
// specified returns a Clause, not an optional one).
func (s *State) BuildAssertingClause() *Clause {
	if s.conflict == nil {
		panic("core: BuildAssertingClause called with no pending conflict")
	}
	level := s.level
	if level <= 1 {
		panic("core: BuildAssertingClause called at the root level")
	}

	start := len(s.trail)
	for start > 0 && s.varOf(s.trail[start-1]).level == level {
		start--
	}
	suffix := s.trail[start:]

	for i, lit := range suffix {
		v := s.varOf(lit)
		v.order = i
		v.dominator = nil
	}
	decisionVar := s.varOf(suffix[0])
	decisionVar.dominator = decisionVar

	for i := 1; i < len(suffix); i++ {
		v := s.varOf(suffix[i])
		reason := v.impliedBy
		for _, p := range reason.literals {
			if p == suffix[i] {
				continue
			}
			pv := s.varOf(p)
			if pv.level != level {
				continue
			}
			if v.dominator == nil {
				v.dominator = pv
			} else {
				v.dominator = idom(pv, v.dominator)
			}
		}
	}

	var uip *Variable
	for _, p := range s.conflict.literals {
		pv := s.varOf(p)
		if pv.level != level {
			continue
		}
		if uip == nil {
			uip = pv
		} else {
			uip = idom(pv, uip)
		}
	}
	if uip == nil {
		panic("core: conflicting clause has no current-level literal")
	}

	s.seen.Clear()
	tmp := s.tmpLearnt[:0]
	maxLevel := 0

	collect := func(reason *Clause, exclude Literal, hasExclude bool) {
		for _, p := range reason.literals {
			if hasExclude && p == exclude {
				continue
			}
			pv := s.varOf(p)
			if pv.level >= level {
				continue
			}
			if s.seen.Contains(pv.id) {
				continue
			}
			s.seen.Add(pv.id)
			tmp = append(tmp, p)
			if pv.level > maxLevel {
				maxLevel = pv.level
			}
		}
	}

	collect(s.conflict, 0, false)
	for _, lit := range suffix {
		v := s.varOf(lit)
		if v != uip && idom(v, uip) == uip {
			collect(v.impliedBy, lit, true)
		}
	}

	assertionLevel := 1
	if maxLevel > 0 {
		assertionLevel = maxLevel
	}

	uipLit := uip.trueLiteral()
	literals := make([]Literal, 0, len(tmp)+1)
	literals = append(literals, uipLit.Opposite())
	literals = append(literals, tmp...)
	s.tmpLearnt = tmp

	c := &Clause{
		learnt:         true,
		literals:       literals,
		assertionLevel: assertionLevel,
		watchA:         literals[0],
		watchB:         noWatch,
	}
	if len(literals) > 1 {
		c.watchB = literals[len(literals)-1]
	}
	return c
}
