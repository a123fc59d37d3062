package formula

import "fmt"

// Parse checks text for well-formedness and builds its syntax tree.
func Parse(text string) (Formula, error) {
	tokens := Tokenize(text)
	if !IsWellFormed(tokens) {
		return nil, fmt.Errorf("malformed formula %q", text)
	}
	return build(tokens)
}

// build runs the two-stack precedence parser over a well-formed token
// stream. Operands collect on one stack, pending operators and '(' markers
// on the other. An incoming binary operator first reduces every pending
// operator of equal or tighter rank, which keeps chains left-associative.
// ¬ is pushed without reducing: as a prefix operator its operand is still
// ahead in the stream.
func build(tokens []rune) (Formula, error) {
	var operands []Formula
	var operators []rune

	reduce := func() error {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if op == runeNot {
			if len(operands) < 1 {
				return fmt.Errorf("¬ is missing its operand")
			}
			operands[len(operands)-1] = Not{Operand: operands[len(operands)-1]}
			return nil
		}
		if len(operands) < 2 {
			return fmt.Errorf("%c is missing an operand", op)
		}
		right := operands[len(operands)-1]
		left := operands[len(operands)-2]
		operands = operands[:len(operands)-1]
		switch op {
		case runeAnd:
			operands[len(operands)-1] = And{Left: left, Right: right}
		case runeOr:
			operands[len(operands)-1] = Or{Left: left, Right: right}
		case runeImplies:
			operands[len(operands)-1] = Implies{Left: left, Right: right}
		case runeIff:
			operands[len(operands)-1] = Iff{Left: left, Right: right}
		default:
			return fmt.Errorf("unknown operator %q", op)
		}
		return nil
	}

	top := func() rune { return operators[len(operators)-1] }

	for _, r := range tokens {
		switch {
		case r == runeBottom:
			operands = append(operands, Bottom{})
		case r == runeTop:
			operands = append(operands, Top{})
		case isOperand(r):
			operands = append(operands, Atom{Name: string(r)})
		case r == runeNot, r == '(':
			operators = append(operators, r)
		case isBinary(r):
			for len(operators) > 0 && top() != '(' && opRank[top()] <= opRank[r] {
				if err := reduce(); err != nil {
					return nil, err
				}
			}
			operators = append(operators, r)
		case r == ')':
			for len(operators) > 0 && top() != '(' {
				if err := reduce(); err != nil {
					return nil, err
				}
			}
			if len(operators) == 0 {
				return nil, fmt.Errorf("unbalanced parenthesis")
			}
			operators = operators[:len(operators)-1]
		default:
			return nil, fmt.Errorf("unexpected symbol %q", r)
		}
	}
	for len(operators) > 0 {
		if top() == '(' {
			return nil, fmt.Errorf("unbalanced parenthesis")
		}
		if err := reduce(); err != nil {
			return nil, err
		}
	}
	if len(operands) != 1 {
		return nil, fmt.Errorf("parse finished with %d trees", len(operands))
	}
	return operands[0], nil
}
