// Package sat bridges formulas to the CDCL solvers. A formula reduces to
// clause form, its atoms are numbered as DIMACS variables, and either
// backend decides the result.
package sat

// Solver is an incrementally built clause set over variables 1..numVars.
// Literals are non-zero ints; a negative literal negates its variable.
type Solver interface {
	AddClause(lits []int)
	Solve() bool
	Model() []bool
}

// Backend constructs a solver sized for the given variable count.
type Backend func(numVars int) Solver
