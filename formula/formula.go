// Package formula implements the propositional formula language: a rune
// tokenizer, a finite-state well-formedness scanner, a precedence-driven
// parser and the structural operations (equality, cloning, evaluation)
// the proof checker is built on.
package formula

// Formula is the interface satisfied by every node of a parsed formula.
// The set of implementations is closed: Atom, Not, And, Or, Implies, Iff,
// Bottom and Top.
type Formula interface {
	isFormula()
	String() string
}

// Atom is a propositional variable named by a single letter.
type Atom struct {
	Name string
}

// Not is the negation ¬X.
type Not struct {
	Operand Formula
}

// And is the conjunction X ∧ Y.
type And struct {
	Left  Formula
	Right Formula
}

// Or is the disjunction X ∨ Y.
type Or struct {
	Left  Formula
	Right Formula
}

// Implies is the implication X → Y.
type Implies struct {
	Left  Formula
	Right Formula
}

// Iff is the biconditional X ↔ Y.
type Iff struct {
	Left  Formula
	Right Formula
}

// Bottom is the falsum constant ⊥.
type Bottom struct{}

// Top is the verum constant ⊤.
type Top struct{}

func (Atom) isFormula()    {}
func (Not) isFormula()     {}
func (And) isFormula()     {}
func (Or) isFormula()      {}
func (Implies) isFormula() {}
func (Iff) isFormula()     {}
func (Bottom) isFormula()  {}
func (Top) isFormula()     {}

// Precedence ranks. A lower rank binds tighter; the parser reduces a
// pending binary operator whenever its rank is at most the incoming one.
const (
	rankAtom    = 0
	rankNot     = 1
	rankAnd     = 2
	rankOr      = 3
	rankImplies = 4
	rankIff     = 5
)

func rank(f Formula) int {
	switch f.(type) {
	case Not:
		return rankNot
	case And:
		return rankAnd
	case Or:
		return rankOr
	case Implies:
		return rankImplies
	case Iff:
		return rankIff
	default:
		return rankAtom
	}
}

func (a Atom) String() string { return a.Name }

func (Bottom) String() string { return "⊥" }

func (Top) String() string { return "⊤" }

func (n Not) String() string { return "¬" + child(n.Operand, rankNot, false) }

func (a And) String() string { return binary(a.Left, "∧", a.Right, rankAnd) }

func (o Or) String() string { return binary(o.Left, "∨", o.Right, rankOr) }

func (i Implies) String() string { return binary(i.Left, "→", i.Right, rankImplies) }

func (i Iff) String() string { return binary(i.Left, "↔", i.Right, rankIff) }

func binary(l Formula, op string, r Formula, rk int) string {
	return child(l, rk, false) + " " + op + " " + child(r, rk, true)
}

// child renders a subtree, parenthesised exactly when reparsing would
// otherwise bind it differently: looser children always, and a right child
// of equal rank because reduction is left-associative.
func child(f Formula, parent int, right bool) string {
	rk := rank(f)
	if rk > parent || (right && rk == parent) {
		return "(" + f.String() + ")"
	}
	return f.String()
}

// Clone returns a deep copy of f. Rule implementations clone every subtree
// they embed in a result so no two lines of a proof share nodes.
func Clone(f Formula) Formula {
	switch n := f.(type) {
	case nil:
		return nil
	case Not:
		return Not{Operand: Clone(n.Operand)}
	case And:
		return And{Left: Clone(n.Left), Right: Clone(n.Right)}
	case Or:
		return Or{Left: Clone(n.Left), Right: Clone(n.Right)}
	case Implies:
		return Implies{Left: Clone(n.Left), Right: Clone(n.Right)}
	case Iff:
		return Iff{Left: Clone(n.Left), Right: Clone(n.Right)}
	default:
		return f
	}
}
