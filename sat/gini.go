package sat

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Gini wraps the gini solver.
type Gini struct {
	solver  *gini.Gini
	numVars int
}

// NewGini returns a gini-backed solver over variables 1..numVars.
func NewGini(numVars int) Solver {
	return &Gini{solver: gini.NewV(numVars), numVars: numVars}
}

func (s *Gini) AddClause(lits []int) {
	for _, l := range lits {
		if l < 0 {
			s.solver.Add(z.Var(-l).Neg())
		} else if l > 0 {
			s.solver.Add(z.Var(l).Pos())
		} else {
			panic("propositional variable cannot be zero")
		}
	}
	s.solver.Add(0)
}

func (s *Gini) Solve() bool {
	return s.solver.Solve() == 1
}

func (s *Gini) Model() []bool {
	model := make([]bool, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		model[v-1] = !s.solver.Value(z.Var(v).Neg())
	}
	return model
}
