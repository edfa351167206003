package dimacsio

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hartcorrin/cdcl/internal/core"
)

func TestReadCNF(t *testing.T) {
	got, err := ReadCNF("testdata/test_instance.cnf", false)
	if err != nil {
		t.Fatalf("ReadCNF(): %s", err)
	}

	want := core.CNF{
		NumVars: 2,
		Clauses: [][]core.Literal{
			{core.PositiveLiteral(0), core.PositiveLiteral(1)},
			{core.NegativeLiteral(0), core.PositiveLiteral(1)},
			{core.PositiveLiteral(0), core.NegativeLiteral(1)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadCNF(): mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCNF_missingFile(t *testing.T) {
	if _, err := ReadCNF("testdata/does-not-exist.cnf", false); err == nil {
		t.Errorf("ReadCNF(): want error, got none")
	}
}

func TestReadModels(t *testing.T) {
	got, err := ReadModels("testdata/test_instance.cnf.models")
	if err != nil {
		t.Fatalf("ReadModels(): %s", err)
	}
	want := [][]bool{{true, true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadModels(): mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteModels(t *testing.T) {
	models := [][]bool{{true, false, true}, {false, false, false}}

	var buf bytes.Buffer
	if err := WriteModels(&buf, models); err != nil {
		t.Fatalf("WriteModels(): %s", err)
	}

	want := "1 -2 3 0\n-1 -2 -3 0\n"
	if buf.String() != want {
		t.Errorf("WriteModels() wrote %q, want %q", buf.String(), want)
	}
}
