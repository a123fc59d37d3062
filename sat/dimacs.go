package sat

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"fitch/formula"
)

// Dimacs writes the problem in DIMACS CNF format: the `p cnf` header, one
// comment per atom-to-variable binding sorted by atom name, then each
// clause as space-separated literals closed by a 0.
func (p *Problem) Dimacs(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(p.Names), len(p.Clauses)); err != nil {
		return err
	}
	names := make([]string, len(p.Names))
	copy(names, p.Names)
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", name, p.index[name]); err != nil {
			return err
		}
	}
	for _, clause := range p.Clauses {
		texts := make([]string, 0, len(clause)+1)
		for _, lit := range clause {
			texts = append(texts, strconv.Itoa(lit))
		}
		texts = append(texts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(texts, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Dimacs renders f in DIMACS CNF format.
func Dimacs(f formula.Formula, w io.Writer) error {
	return NewProblem(f).Dimacs(w)
}
