package core

import (
	"reflect"
	"testing"
)

func lits(vs ...int) []Literal {
	out := make([]Literal, len(vs))
	for i, v := range vs {
		if v < 0 {
			out[i] = NegativeLiteral(-v - 1)
		} else {
			out[i] = PositiveLiteral(v)
		}
	}
	return out
}

func TestDedupeAndCheckTautology(t *testing.T) {
	tests := []struct {
		name      string
		in        []Literal
		want      []Literal
		tautology bool
	}{
		{
			name: "no duplicates",
			in:   lits(0, 1, 2),
			want: lits(0, 1, 2),
		},
		{
			name: "duplicate literal dropped",
			in:   lits(0, 1, 0),
			want: lits(0, 1),
		},
		{
			name:      "tautology",
			in:        lits(0, -1, 1),
			tautology: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tautology := dedupeAndCheckTautology(tt.in)
			if tautology != tt.tautology {
				t.Fatalf("tautology = %v, want %v", tautology, tt.tautology)
			}
			if tautology {
				return
			}
			gotSet := map[Literal]bool{}
			for _, l := range got {
				gotSet[l] = true
			}
			wantSet := map[Literal]bool{}
			for _, l := range tt.want {
				wantSet[l] = true
			}
			if !reflect.DeepEqual(gotSet, wantSet) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClauseOtherWatchAndReplace(t *testing.T) {
	c := &Clause{literals: lits(0, 1, 2), watchA: PositiveLiteral(0), watchB: PositiveLiteral(2)}

	if got := c.otherWatch(PositiveLiteral(0)); got != PositiveLiteral(2) {
		t.Errorf("otherWatch(watchA) = %v, want watchB", got)
	}
	if got := c.otherWatch(PositiveLiteral(2)); got != PositiveLiteral(0) {
		t.Errorf("otherWatch(watchB) = %v, want watchA", got)
	}

	c.replaceWatch(PositiveLiteral(0), PositiveLiteral(1))
	if c.watchA != PositiveLiteral(1) {
		t.Errorf("watchA after replace = %v, want literal 1", c.watchA)
	}
	if c.watchB != PositiveLiteral(2) {
		t.Errorf("watchB after replace = %v, want unchanged literal 2", c.watchB)
	}
}
