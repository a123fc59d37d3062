package cnf

import (
	"fmt"

	"fitch/formula"
)

// Literal is one clause member: an atom, possibly under a negation.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Name
	}
	return l.Name
}

// Clause is a disjunction of literals. An empty clause is unsatisfiable.
type Clause []Literal

// Clausal converts f to clause form for the solvers. A formula that folds
// to ⊤ yields no clauses at all; one that folds to ⊥ yields a single empty
// clause. Nothing else can remain besides literals once Convert and
// Simplify have run.
func Clausal(f formula.Formula) []Clause {
	reduced := Simplify(Convert(f))
	switch reduced.(type) {
	case nil, formula.Top:
		return nil
	case formula.Bottom:
		return []Clause{{}}
	}
	spine := conjuncts(reduced)
	clauses := make([]Clause, len(spine))
	for i, raw := range spine {
		literals := disjuncts(raw)
		clause := make(Clause, len(literals))
		for j, literal := range literals {
			switch l := literal.(type) {
			case formula.Atom:
				clause[j] = Literal{Name: l.Name}
			case formula.Not:
				atom, ok := l.Operand.(formula.Atom)
				if !ok {
					panic(fmt.Sprintf("non-literal %s in converted clause", literal))
				}
				clause[j] = Literal{Name: atom.Name, Negated: true}
			default:
				panic(fmt.Sprintf("non-literal %s in converted clause", literal))
			}
		}
		clauses[i] = clause
	}
	return clauses
}
