// Package horn decides Horn formulas: conjunctions of clauses
// (body → head) whose bodies are conjunctions of atoms. The solver marks
// atoms forward to a fixpoint, which is both a satisfiability test and the
// minimal model. A Prolog backend answers the same questions by SLD
// resolution.
package horn

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"fitch/formula"
)

// Clause is one Horn clause: Head may be asserted once every atom of Body
// holds. A goal clause has ⊥ for its head, and firing one refutes the
// whole formula.
type Clause struct {
	Body []string
	Head string
	Goal bool
}

// Extract reads f as a conjunction of Horn clauses. Each conjunct must be
// an implication; bodies may mix atoms with constants (a ⊤ conjunct is
// dropped, a ⊥ conjunct makes the clause unfirable and it is discarded);
// heads must be an atom, ⊥ for a goal clause, or ⊤ for a clause that says
// nothing and is discarded. Anything else means f is not Horn.
func Extract(f formula.Formula) ([]Clause, error) {
	var clauses []Clause
	for _, raw := range conjuncts(f) {
		imp, ok := raw.(formula.Implies)
		if !ok {
			return nil, fmt.Errorf("%s is not an implication", raw)
		}
		var clause Clause
		firable := true
		for _, member := range conjuncts(imp.Left) {
			switch b := member.(type) {
			case formula.Top:
			case formula.Bottom:
				firable = false
			case formula.Atom:
				clause.Body = append(clause.Body, b.Name)
			default:
				return nil, fmt.Errorf("body %s is not a conjunction of atoms", imp.Left)
			}
		}
		switch h := imp.Right.(type) {
		case formula.Atom:
			clause.Head = h.Name
		case formula.Bottom:
			clause.Goal = true
		case formula.Top:
			continue
		default:
			return nil, fmt.Errorf("head %s is not an atom or a constant", imp.Right)
		}
		if !firable {
			continue
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// Solve marks atoms forward until nothing new fires. Firing a goal clause
// refutes the formula; otherwise the marked atoms are its minimal model.
func Solve(clauses []Clause) (mapset.Set[string], bool) {
	marked := mapset.NewSet[string]()
	for changed := true; changed; {
		changed = false
		for _, clause := range clauses {
			if !fires(clause, marked) {
				continue
			}
			if clause.Goal {
				return nil, false
			}
			if marked.Add(clause.Head) {
				changed = true
			}
		}
	}
	return marked, true
}

func fires(clause Clause, marked mapset.Set[string]) bool {
	for _, atom := range clause.Body {
		if !marked.Contains(atom) {
			return false
		}
	}
	return true
}

// Check decides the Horn formula in text and reports the verdict: the
// satisfiable verdict carries the true atoms, sorted, when there are any.
// Empty input holds vacuously.
func Check(input string) string {
	text := strings.TrimSpace(input)
	if text == "" {
		return "Satisfiable"
	}
	f, err := formula.Parse(text)
	if err != nil {
		return fmt.Sprintf("Invalid Horn Formula: %v", err)
	}
	clauses, err := Extract(f)
	if err != nil {
		return fmt.Sprintf("Invalid Horn Formula: %v", err)
	}
	model, sat := Solve(clauses)
	if !sat {
		return "Unsatisfiable"
	}
	atoms := model.ToSlice()
	if len(atoms) == 0 {
		return "Satisfiable"
	}
	sort.Strings(atoms)
	return fmt.Sprintf("Satisfiable\n{%s}", strings.Join(atoms, ", "))
}

// conjuncts flattens the ∧ spine of f left to right.
func conjuncts(f formula.Formula) []formula.Formula {
	if conj, ok := f.(formula.And); ok {
		return append(conjuncts(conj.Left), conjuncts(conj.Right)...)
	}
	return []formula.Formula{f}
}
