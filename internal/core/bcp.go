package core

// watchClause registers c as watching watchLit: c is re-examined whenever
// watchLit's variable is assigned such that watchLit becomes false. Clauses
// watching a literal L are filed under key L.Opposite(), so that when L is
// pushed true the clauses whose watch just went false are found at
// s.watchers[L] directly, with no further negation needed at lookup time.
func (s *State) watchClause(c *Clause, watchLit Literal) {
	key := watchLit.Opposite()
	s.watchers[key] = append(s.watchers[key], c)
}

// scanForReplacement searches c's literal list for a new watch to replace
// watchLit, which was just falsified. It returns (lit, true, false) if a
// replacement was found, (_, false, true) if the scan instead discovered c is
// already satisfied (in which case the clause is subsumed and the scan stops
// immediately, per the resolution of the detection-ordering question), or
// (_, false, false) if neither: the clause has no free literal left other
// than its other watch.
func scanForReplacement(s *State, c *Clause, watchLit Literal) (lit Literal, found bool, subsumed bool) {
	other := c.otherWatch(watchLit)
	for _, l := range c.literals {
		if s.IsTrue(l) {
			return 0, false, true
		}
		if l == watchLit || l == other {
			continue
		}
		if !s.IsFalse(l) {
			return l, true, false
		}
	}
	return 0, false, false
}

// UnitResolution drains the propagate work-list, applying the watched-
// literal scheme to every clause whose watch is falsified as a result. It
// returns the first clause found with every one of its literals false, or
// nil if the work-list empties without conflict. On conflict, the work-list is cleared and every watcher not yet
// visited this call is preserved exactly as found, so that a later undo
// leaves the watch structure consistent.
func (s *State) UnitResolution() *Clause {
	for !s.propagateQueue.IsEmpty() {
		l := s.propagateQueue.Pop()

		list := s.watchers[l]
		s.tmpWatchers = append(s.tmpWatchers[:0], list...)
		s.watchers[l] = list[:0]

		for i, c := range s.tmpWatchers {
			if c.isSubsumed {
				s.watchers[l] = append(s.watchers[l], c)
				continue
			}

			watchLit := l.Opposite()
			replacement, found, subsumed := scanForReplacement(s, c, watchLit)

			switch {
			case subsumed:
				s.markSubsumed(c)
				s.watchers[l] = append(s.watchers[l], c)

			case found:
				c.replaceWatch(watchLit, replacement)
				s.watchClause(c, replacement)

			default:
				other := c.otherWatch(watchLit)
				if s.IsFalse(other) {
					s.watchers[l] = append(s.watchers[l], c)
					s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
					s.propagateQueue.Clear()
					s.conflict = c
					return c
				}
				// other is unassigned: the clause forces it true. The
				// literal we are about to push is one of c's own two
				// watches, so c is satisfied the instant it lands.
				s.enqueue(other, c)
				s.markSubsumed(c)
				s.watchers[l] = append(s.watchers[l], c)
			}
		}
	}
	s.conflict = nil
	return nil
}
