// Package cnf rewrites formulas into conjunctive normal form through the
// usual three passes: eliminate → and ↔, push negations down to the
// literals, then distribute ∨ over ∧. Every pass tolerates a nil formula
// and returns fresh nodes, leaving its input untouched.
package cnf

import (
	"strings"

	"fitch/formula"
)

// EliminateImplications rewrites X → Y as ¬X ∨ Y and X ↔ Y as
// (¬X ∨ Y) ∧ (¬Y ∨ X), children first.
func EliminateImplications(f formula.Formula) formula.Formula {
	switch n := f.(type) {
	case nil:
		return nil
	case formula.Not:
		return formula.Not{Operand: EliminateImplications(n.Operand)}
	case formula.And:
		return formula.And{
			Left:  EliminateImplications(n.Left),
			Right: EliminateImplications(n.Right),
		}
	case formula.Or:
		return formula.Or{
			Left:  EliminateImplications(n.Left),
			Right: EliminateImplications(n.Right),
		}
	case formula.Implies:
		return formula.Or{
			Left:  formula.Not{Operand: EliminateImplications(n.Left)},
			Right: EliminateImplications(n.Right),
		}
	case formula.Iff:
		left := EliminateImplications(n.Left)
		right := EliminateImplications(n.Right)
		return formula.And{
			Left: formula.Or{
				Left:  formula.Not{Operand: left},
				Right: right,
			},
			Right: formula.Or{
				Left:  formula.Not{Operand: formula.Clone(right)},
				Right: formula.Clone(left),
			},
		}
	default:
		return f
	}
}

// PushNegations drives every ¬ down to an atom: double negations cancel,
// De Morgan turns ¬(X ∧ Y) and ¬(X ∨ Y) into their duals, and negated
// constants flip. The input must be free of → and ↔.
func PushNegations(f formula.Formula) formula.Formula {
	switch n := f.(type) {
	case nil:
		return nil
	case formula.Not:
		switch inner := n.Operand.(type) {
		case formula.Not:
			return PushNegations(inner.Operand)
		case formula.And:
			return formula.Or{
				Left:  PushNegations(formula.Not{Operand: inner.Left}),
				Right: PushNegations(formula.Not{Operand: inner.Right}),
			}
		case formula.Or:
			return formula.And{
				Left:  PushNegations(formula.Not{Operand: inner.Left}),
				Right: PushNegations(formula.Not{Operand: inner.Right}),
			}
		case formula.Bottom:
			return formula.Top{}
		case formula.Top:
			return formula.Bottom{}
		default:
			return formula.Not{Operand: PushNegations(n.Operand)}
		}
	case formula.And:
		return formula.And{
			Left:  PushNegations(n.Left),
			Right: PushNegations(n.Right),
		}
	case formula.Or:
		return formula.Or{
			Left:  PushNegations(n.Left),
			Right: PushNegations(n.Right),
		}
	default:
		return f
	}
}

// DistributeOrs applies X ∨ (Y ∧ Z) ⇒ (X ∨ Y) ∧ (X ∨ Z) until no ∨ has a
// conjunction beneath it. A conjunction on the left distributes before one
// on the right.
func DistributeOrs(f formula.Formula) formula.Formula {
	switch n := f.(type) {
	case nil:
		return nil
	case formula.And:
		return formula.And{
			Left:  DistributeOrs(n.Left),
			Right: DistributeOrs(n.Right),
		}
	case formula.Or:
		left := DistributeOrs(n.Left)
		right := DistributeOrs(n.Right)
		if conj, ok := left.(formula.And); ok {
			return formula.And{
				Left:  DistributeOrs(formula.Or{Left: conj.Left, Right: right}),
				Right: DistributeOrs(formula.Or{Left: conj.Right, Right: formula.Clone(right)}),
			}
		}
		if conj, ok := right.(formula.And); ok {
			return formula.And{
				Left:  DistributeOrs(formula.Or{Left: left, Right: conj.Left}),
				Right: DistributeOrs(formula.Or{Left: formula.Clone(left), Right: conj.Right}),
			}
		}
		return formula.Or{Left: left, Right: right}
	default:
		return f
	}
}

// Convert runs the three passes in order and returns an equivalent formula
// in conjunctive normal form.
func Convert(f formula.Formula) formula.Formula {
	return DistributeOrs(PushNegations(EliminateImplications(f)))
}

// Simplify folds the constants out of a formula: a ⊥ absorbs its
// conjunction and vanishes from its disjunction, a ⊤ the other way round,
// and a negated constant flips. Children fold first, so constants never
// survive except as the whole formula.
func Simplify(f formula.Formula) formula.Formula {
	switch n := f.(type) {
	case nil:
		return nil
	case formula.Not:
		operand := Simplify(n.Operand)
		switch operand.(type) {
		case formula.Bottom:
			return formula.Top{}
		case formula.Top:
			return formula.Bottom{}
		}
		return formula.Not{Operand: operand}
	case formula.And:
		left := Simplify(n.Left)
		right := Simplify(n.Right)
		if isBottom(left) || isBottom(right) {
			return formula.Bottom{}
		}
		if isTop(left) {
			return right
		}
		if isTop(right) {
			return left
		}
		return formula.And{Left: left, Right: right}
	case formula.Or:
		left := Simplify(n.Left)
		right := Simplify(n.Right)
		if isTop(left) || isTop(right) {
			return formula.Top{}
		}
		if isBottom(left) {
			return right
		}
		if isBottom(right) {
			return left
		}
		return formula.Or{Left: left, Right: right}
	default:
		return f
	}
}

func isTop(f formula.Formula) bool {
	_, ok := f.(formula.Top)
	return ok
}

func isBottom(f formula.Formula) bool {
	_, ok := f.(formula.Bottom)
	return ok
}

// Render formats a CNF formula in clause notation: literals joined by ∨,
// clauses joined by ∧, and a clause wrapped in parentheses only when it
// holds several literals and stands beside other clauses.
func Render(f formula.Formula) string {
	if f == nil {
		return ""
	}
	clauses := conjuncts(f)
	parts := make([]string, len(clauses))
	for i, clause := range clauses {
		literals := disjuncts(clause)
		texts := make([]string, len(literals))
		for j, literal := range literals {
			texts[j] = literal.String()
		}
		part := strings.Join(texts, " ∨ ")
		if len(literals) > 1 && len(clauses) > 1 {
			part = "(" + part + ")"
		}
		parts[i] = part
	}
	return strings.Join(parts, " ∧ ")
}

// conjuncts flattens the ∧ spine of f left to right.
func conjuncts(f formula.Formula) []formula.Formula {
	if conj, ok := f.(formula.And); ok {
		return append(conjuncts(conj.Left), conjuncts(conj.Right)...)
	}
	return []formula.Formula{f}
}

// disjuncts flattens the ∨ spine of f left to right.
func disjuncts(f formula.Formula) []formula.Formula {
	if disj, ok := f.(formula.Or); ok {
		return append(disjuncts(disj.Left), disjuncts(disj.Right)...)
	}
	return []formula.Formula{f}
}
