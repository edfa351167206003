package core

// varOf returns the Variable backing lit.
func (s *State) varOf(lit Literal) *Variable {
	return &s.variables[lit.VarID()]
}

// IsTrue reports whether lit is currently true.
func (s *State) IsTrue(lit Literal) bool {
	v := s.varOf(lit)
	return v.level > 0 && v.value == lit.IsPositive()
}

// IsFalse reports whether lit is currently false.
func (s *State) IsFalse(lit Literal) bool {
	v := s.varOf(lit)
	return v.level > 0 && v.value != lit.IsPositive()
}

// enqueue attempts to push lit onto the trail as true, with implier as its
// reason (nil for a decision literal). It reports false if lit's variable is
// already assigned to the opposite value (a conflict), leaving the state
// unchanged; otherwise it reports true, whether or not a new trail entry was
// made (an already-true literal is a harmless no-op, matching the single
// occurrence invariant a variable has on the trail).
func (s *State) enqueue(lit Literal, implier *Clause) bool {
	v := s.varOf(lit)
	if v.level > 0 {
		return v.value == lit.IsPositive()
	}
	v.level = s.level
	v.value = lit.IsPositive()
	v.impliedBy = implier
	s.trail = append(s.trail, lit)
	s.propagateQueue.Push(lit)
	return true
}

// undoOne pops the most recent trail entry, clearing its variable's decision
// record.
func (s *State) undoOne() {
	lit := s.trail[len(s.trail)-1]
	v := s.varOf(lit)
	v.level = 0
	v.impliedBy = nil
	s.trail = s.trail[:len(s.trail)-1]
}

// DecisionLevel returns the current decision level. The root level is 1.
func (s *State) DecisionLevel() int {
	return s.level
}

// UndoUnitResolution pops every trail entry made at the current decision
// level, unwinds the subsumption journal back to (but not past) the current
// level's boundary, and clears the propagate work-list. The level itself is
// unchanged: a caller that wants to also give up the level back to its
// decision calls UndoDecide instead.
func (s *State) UndoUnitResolution() {
	for len(s.trail) > 0 {
		v := s.varOf(s.trail[len(s.trail)-1])
		if v.level != s.level {
			break
		}
		s.undoOne()
	}
	s.drainAboveBoundary()
	s.propagateQueue.Clear()
	s.conflict = nil
}

// UndoDecide undoes the current decision level entirely: every trail entry
// and subsumption mark made since the level began, then the level's own
// boundary, then decrements the level. It is a programmer error to call this
// at the root level.
func (s *State) UndoDecide() {
	if s.level <= 1 {
		panic("core: UndoDecide called at the root level")
	}
	s.UndoUnitResolution()
	s.popBoundary()
	s.level--
}
