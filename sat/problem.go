package sat

import (
	"fitch/cnf"
	"fitch/formula"
)

// Problem is a formula in clause form with its atoms numbered for the
// solvers: the atom first seen at position i of Names is DIMACS variable
// i+1.
type Problem struct {
	Names   []string
	Clauses [][]int
	index   map[string]int
}

// NewProblem reduces f to clause form and numbers its atoms in order of
// first appearance.
func NewProblem(f formula.Formula) *Problem {
	p := &Problem{index: make(map[string]int)}
	for _, clause := range cnf.Clausal(f) {
		lits := make([]int, len(clause))
		for i, literal := range clause {
			v := p.variable(literal.Name)
			if literal.Negated {
				v = -v
			}
			lits[i] = v
		}
		p.Clauses = append(p.Clauses, lits)
	}
	return p
}

func (p *Problem) variable(name string) int {
	if v, ok := p.index[name]; ok {
		return v
	}
	p.Names = append(p.Names, name)
	v := len(p.Names)
	p.index[name] = v
	return v
}

// Solve decides the problem with the given backend and, when satisfiable,
// reports the truth of each named atom. An empty clause is unsatisfiable
// on its own and a problem with no clauses is trivially satisfiable;
// neither consults the backend.
func (p *Problem) Solve(backend Backend) (bool, map[string]bool) {
	for _, clause := range p.Clauses {
		if len(clause) == 0 {
			return false, nil
		}
	}
	if len(p.Clauses) == 0 {
		return true, map[string]bool{}
	}
	s := backend(len(p.Names))
	for _, clause := range p.Clauses {
		s.AddClause(clause)
	}
	if !s.Solve() {
		return false, nil
	}
	model := s.Model()
	named := make(map[string]bool, len(p.Names))
	for i, name := range p.Names {
		named[name] = model[i]
	}
	return true, named
}

// Satisfiable decides f and returns a satisfying assignment by atom name.
func Satisfiable(f formula.Formula) (bool, map[string]bool) {
	return NewProblem(f).Solve(NewGopher)
}

// Entails reports whether the premises taken together force the
// conclusion: it holds exactly when premises ∧ ¬conclusion is
// unsatisfiable.
func Entails(premises []formula.Formula, conclusion formula.Formula) bool {
	combined := formula.Formula(formula.Not{Operand: formula.Clone(conclusion)})
	for _, premise := range premises {
		combined = formula.And{Left: formula.Clone(premise), Right: combined}
	}
	sat, _ := Satisfiable(combined)
	return !sat
}
