package core

// journalEntryKind tags a subsumption-journal entry. The journal is a
// tagged-variant stack rather than a null-terminated list: a Boundary entry
// marks where a decision level began, a ClauseMark entry records a clause
// that was marked subsumed since the last boundary.
type journalEntryKind uint8

const (
	journalBoundary journalEntryKind = iota
	journalClauseMark
)

type journalEntry struct {
	kind   journalEntryKind
	clause *Clause
}

// pushBoundary marks the start of a new decision level on the subsumption
// journal.
func (s *State) pushBoundary() {
	s.journal = append(s.journal, journalEntry{kind: journalBoundary})
}

// markSubsumed flags c as subsumed and journals the change so it can be
// undone when the current level is popped. Marking an already-subsumed
// clause is a no-op: it must not be journaled twice, or undo would try to
// un-mark it twice as well.
func (s *State) markSubsumed(c *Clause) {
	if c.isSubsumed {
		return
	}
	c.isSubsumed = true
	s.journal = append(s.journal, journalEntry{kind: journalClauseMark, clause: c})
}

// drainAboveBoundary pops subsumption-journal entries down to (but not
// including) the most recent boundary, clearing isSubsumed on every clause
// entry it encounters. The boundary itself is left in place: the caller is
// unwinding the current level's propagation, not the level itself.
func (s *State) drainAboveBoundary() {
	for len(s.journal) > 0 {
		top := s.journal[len(s.journal)-1]
		if top.kind == journalBoundary {
			return
		}
		s.journal = s.journal[:len(s.journal)-1]
		top.clause.isSubsumed = false
	}
}

// popBoundary removes the journal's top boundary marker. Callers must first
// drain every clause mark above it with drainAboveBoundary.
func (s *State) popBoundary() {
	if len(s.journal) == 0 || s.journal[len(s.journal)-1].kind != journalBoundary {
		panic("core: popBoundary called with no boundary on top of the journal")
	}
	s.journal = s.journal[:len(s.journal)-1]
}
