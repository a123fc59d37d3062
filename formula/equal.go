package formula

// Equal reports structural equality of two formulas. Conjunctions and
// disjunctions compare their children in either order, so a ∧ b matches
// b ∧ a at any depth; implications and biconditionals are ordered. Two nil
// formulas are equal.
func Equal(a, b Formula) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Atom:
		y, ok := b.(Atom)
		return ok && x.Name == y.Name
	case Bottom:
		_, ok := b.(Bottom)
		return ok
	case Top:
		_, ok := b.(Top)
		return ok
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Operand, y.Operand)
	case And:
		y, ok := b.(And)
		if !ok {
			return false
		}
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right) ||
			Equal(x.Left, y.Right) && Equal(x.Right, y.Left)
	case Or:
		y, ok := b.(Or)
		if !ok {
			return false
		}
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right) ||
			Equal(x.Left, y.Right) && Equal(x.Right, y.Left)
	case Implies:
		y, ok := b.(Implies)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Iff:
		y, ok := b.(Iff)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}
