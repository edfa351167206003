// Package dimacsio reads and writes the DIMACS CNF and model formats the
// core engine's CLI and test fixtures exchange. The core package itself
// never touches a filesystem or parses text; this package is the boundary
// that turns DIMACS files into core.CNF and turns assignments back into
// DIMACS-style model lines.
package dimacsio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/hartcorrin/cdcl/internal/core"
)

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// cnfBuilder implements dimacs.Builder, accumulating a core.CNF.
type cnfBuilder struct {
	cnf core.CNF
}

func (b *cnfBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: instance of type %q is not supported", problem)
	}
	b.cnf.NumVars = nVars
	b.cnf.Clauses = make([][]core.Literal, 0, nClauses)
	return nil
}

func (b *cnfBuilder) Comment(_ string) error {
	return nil
}

func (b *cnfBuilder) Clause(tmp []int) error {
	clause := make([]core.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = core.NegativeLiteral(-l - 1)
		} else {
			clause[i] = core.PositiveLiteral(l - 1)
		}
	}
	b.cnf.Clauses = append(b.cnf.Clauses, clause)
	return nil
}

// ReadCNF parses a DIMACS CNF file, transparently gunzipping it first when
// gzipped is set.
func ReadCNF(filename string, gzipped bool) (core.CNF, error) {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return core.CNF{}, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &cnfBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return core.CNF{}, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return b.cnf, nil
}

// ReadModels returns the list of models contained in a models file: one
// model per line, each a whitespace-separated list of signed 1-based
// literals terminated by 0, exactly as DIMACS clause lines are written.
func ReadModels(filename string) ([][]bool, error) {
	r, err := openReader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	var models [][]bool
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		fields := strings.Fields(line)
		model := make([]bool, 0, len(fields))
		for _, f := range fields {
			if f == "0" {
				continue
			}
			l, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("dimacsio: parsing literal %q: %w", f, err)
			}
			model = append(model, l > 0)
		}
		models = append(models, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models, nil
}

// WriteModel writes model (indexed by 0-based variable ID, true meaning the
// variable is assigned true) as a single DIMACS-style model line.
func WriteModel(w io.Writer, model []bool) error {
	sb := strings.Builder{}
	for i, v := range model {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v {
			fmt.Fprintf(&sb, "%d", i+1)
		} else {
			fmt.Fprintf(&sb, "-%d", i+1)
		}
	}
	sb.WriteString(" 0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteModels writes every model in models, one per line.
func WriteModels(w io.Writer, models [][]bool) error {
	for _, m := range models {
		if err := WriteModel(w, m); err != nil {
			return err
		}
	}
	return nil
}
