package sat

import (
	"github.com/crillab/gophersat/solver"
)

// Gopher wraps the gophersat CDCL solver.
type Gopher struct {
	solver *solver.Solver
}

// NewGopher returns a gophersat-backed solver over variables 1..numVars.
// The initial problem carries one tautology clause per variable, so every
// variable is represented before any real clause arrives.
func NewGopher(numVars int) Solver {
	clauses := make([][]int, 0, numVars)
	for v := 1; v <= numVars; v++ {
		clauses = append(clauses, []int{v, -v})
	}
	pb := solver.ParseSlice(clauses)
	return &Gopher{solver: solver.New(pb)}
}

func (s *Gopher) AddClause(lits []int) {
	converted := make([]solver.Lit, 0, len(lits))
	for _, l := range lits {
		if l == 0 {
			panic("propositional variable cannot be zero")
		}
		converted = append(converted, solver.IntToLit(int32(l)))
	}
	s.solver.AppendClause(solver.NewClause(converted))
}

func (s *Gopher) Solve() bool {
	return s.solver.Solve() == solver.Sat
}

func (s *Gopher) Model() []bool {
	return s.solver.Model()
}
