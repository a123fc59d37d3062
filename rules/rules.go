// Package rules implements the natural-deduction inference rules as pure
// functions over formulas. Each rule takes a fixed number of argument
// formulas, checks its preconditions and returns the derived formula;
// the proof verifier and the standalone apply tool decide where arguments
// come from.
package rules

import (
	"fmt"
	"sort"

	"fitch/formula"
)

// Violation reports a failed rule precondition.
type Violation struct {
	Rule   string
	Reason string
}

func (v *Violation) Error() string {
	return v.Rule + ": " + v.Reason
}

func violation(format string, args ...any) error {
	return &Violation{Reason: fmt.Sprintf(format, args...)}
}

type applyFunc func(args []formula.Formula) (formula.Formula, error)

// Rule is one entry of the catalog.
type Rule struct {
	Name  string
	Arity int
	apply applyFunc
}

// Apply runs the rule over args. It returns the derived formula, or a
// *Violation when the argument count or a precondition is not met. Results
// never share nodes with the arguments.
func (r Rule) Apply(args ...formula.Formula) (formula.Formula, error) {
	if len(args) != r.Arity {
		return nil, &Violation{
			Rule:   r.Name,
			Reason: fmt.Sprintf("takes %d formulas, got %d", r.Arity, len(args)),
		}
	}
	result, err := r.apply(args)
	if err != nil {
		if v, ok := err.(*Violation); ok && v.Rule == "" {
			v.Rule = r.Name
		}
		return nil, err
	}
	return result, nil
}

var catalog = map[string]Rule{}

func register(name string, arity int, apply applyFunc) {
	catalog[name] = Rule{Name: name, Arity: arity, apply: apply}
}

func init() {
	register("∧i", 2, andIntro)
	register("∧e1", 1, andElimLeft)
	register("∧e2", 1, andElimRight)
	register("→e", 2, impliesElim)
	register("→i", 2, impliesIntro)
	register("¬e", 2, negElim)
	register("¬i", 2, negIntro)
	register("¬¬e", 1, doubleNegElim)
	register("¬¬i", 1, doubleNegIntro)
	register("MT", 2, modusTollens)
	register("∨i1", 2, orIntroLeft)
	register("∨i2", 2, orIntroRight)
	register("∨e", 3, orElim)
	register("PBC", 2, contradictionProof)
	register("⊥e", 2, bottomElim)
	register("LEM", 1, excludedMiddle)
	register("Copy", 1, copyLine)
	register("Assumption", 0, assumption)
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, bool) {
	r, ok := catalog[name]
	return r, ok
}

// Names returns every registered rule name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func andIntro(args []formula.Formula) (formula.Formula, error) {
	return formula.And{Left: formula.Clone(args[0]), Right: formula.Clone(args[1])}, nil
}

func andElimLeft(args []formula.Formula) (formula.Formula, error) {
	conj, ok := args[0].(formula.And)
	if !ok {
		return nil, violation("%s is not a conjunction", args[0])
	}
	return formula.Clone(conj.Left), nil
}

func andElimRight(args []formula.Formula) (formula.Formula, error) {
	conj, ok := args[0].(formula.And)
	if !ok {
		return nil, violation("%s is not a conjunction", args[0])
	}
	return formula.Clone(conj.Right), nil
}

func impliesElim(args []formula.Formula) (formula.Formula, error) {
	imp, ok := args[0].(formula.Implies)
	if !ok {
		return nil, violation("%s is not an implication", args[0])
	}
	if !formula.Equal(imp.Left, args[1]) {
		return nil, violation("%s does not match the antecedent of %s", args[1], imp)
	}
	return formula.Clone(imp.Right), nil
}

// impliesIntro discharges an assumption: from a box that assumes args[0]
// and concludes args[1] it derives the implication.
func impliesIntro(args []formula.Formula) (formula.Formula, error) {
	return formula.Implies{Left: formula.Clone(args[0]), Right: formula.Clone(args[1])}, nil
}

func negElim(args []formula.Formula) (formula.Formula, error) {
	if neg, ok := args[0].(formula.Not); ok && formula.Equal(neg.Operand, args[1]) {
		return formula.Bottom{}, nil
	}
	if neg, ok := args[1].(formula.Not); ok && formula.Equal(neg.Operand, args[0]) {
		return formula.Bottom{}, nil
	}
	return nil, violation("%s and %s are not contradictory", args[0], args[1])
}

// negIntro discharges an assumption that led to ⊥.
func negIntro(args []formula.Formula) (formula.Formula, error) {
	if _, ok := args[1].(formula.Bottom); !ok {
		return nil, violation("the box concludes %s, not ⊥", args[1])
	}
	return formula.Not{Operand: formula.Clone(args[0])}, nil
}

func doubleNegElim(args []formula.Formula) (formula.Formula, error) {
	outer, ok := args[0].(formula.Not)
	if !ok {
		return nil, violation("%s is not a double negation", args[0])
	}
	inner, ok := outer.Operand.(formula.Not)
	if !ok {
		return nil, violation("%s is not a double negation", args[0])
	}
	return formula.Clone(inner.Operand), nil
}

func doubleNegIntro(args []formula.Formula) (formula.Formula, error) {
	return formula.Not{Operand: formula.Not{Operand: formula.Clone(args[0])}}, nil
}

func modusTollens(args []formula.Formula) (formula.Formula, error) {
	imp, ok := args[0].(formula.Implies)
	if !ok {
		return nil, violation("%s is not an implication", args[0])
	}
	neg, ok := args[1].(formula.Not)
	if !ok {
		return nil, violation("%s is not a negation", args[1])
	}
	if !formula.Equal(neg.Operand, imp.Right) {
		return nil, violation("%s does not negate the consequent of %s", args[1], imp)
	}
	return formula.Not{Operand: formula.Clone(imp.Left)}, nil
}

// orIntroLeft derives the target disjunction args[1] from its left
// disjunct; orIntroRight from its right.
func orIntroLeft(args []formula.Formula) (formula.Formula, error) {
	target, ok := args[1].(formula.Or)
	if !ok {
		return nil, violation("%s is not a disjunction", args[1])
	}
	if !formula.Equal(args[0], target.Left) {
		return nil, violation("%s is not the left disjunct of %s", args[0], target)
	}
	return formula.Clone(target), nil
}

func orIntroRight(args []formula.Formula) (formula.Formula, error) {
	target, ok := args[1].(formula.Or)
	if !ok {
		return nil, violation("%s is not a disjunction", args[1])
	}
	if !formula.Equal(args[0], target.Right) {
		return nil, violation("%s is not the right disjunct of %s", args[0], target)
	}
	return formula.Clone(target), nil
}

// orElim takes the disjunction and the conclusions of its two case boxes,
// which must agree.
func orElim(args []formula.Formula) (formula.Formula, error) {
	if _, ok := args[0].(formula.Or); !ok {
		return nil, violation("%s is not a disjunction", args[0])
	}
	if !formula.Equal(args[1], args[2]) {
		return nil, violation("the case boxes conclude %s and %s", args[1], args[2])
	}
	return formula.Clone(args[1]), nil
}

// contradictionProof (PBC) discharges a ¬X assumption that led to ⊥.
func contradictionProof(args []formula.Formula) (formula.Formula, error) {
	neg, ok := args[0].(formula.Not)
	if !ok {
		return nil, violation("the box assumes %s, not a negation", args[0])
	}
	if _, ok := args[1].(formula.Bottom); !ok {
		return nil, violation("the box concludes %s, not ⊥", args[1])
	}
	return formula.Clone(neg.Operand), nil
}

func bottomElim(args []formula.Formula) (formula.Formula, error) {
	if _, ok := args[0].(formula.Bottom); !ok {
		return nil, violation("%s is not ⊥", args[0])
	}
	return formula.Clone(args[1]), nil
}

// excludedMiddle accepts any target of the shape X ∨ ¬X or ¬X ∨ X and
// returns the canonical orientation.
func excludedMiddle(args []formula.Formula) (formula.Formula, error) {
	target, ok := args[0].(formula.Or)
	if !ok {
		return nil, violation("%s is not a disjunction", args[0])
	}
	var base formula.Formula
	switch {
	case formula.Equal(target.Right, formula.Not{Operand: target.Left}):
		base = target.Left
	case formula.Equal(target.Left, formula.Not{Operand: target.Right}):
		base = target.Right
	default:
		return nil, violation("%s is not an instance of X ∨ ¬X", target)
	}
	return formula.Or{
		Left:  formula.Clone(base),
		Right: formula.Not{Operand: formula.Clone(base)},
	}, nil
}

func copyLine(args []formula.Formula) (formula.Formula, error) {
	return formula.Clone(args[0]), nil
}

func assumption([]formula.Formula) (formula.Formula, error) {
	return nil, violation("an assumption is not an inference")
}
