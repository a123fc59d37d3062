package formula

import mapset "github.com/deckarep/golang-set/v2"

// Eval computes the truth value of f under model, a map from atom names to
// truth values. Atoms absent from the model read false.
func Eval(f Formula, model map[string]bool) bool {
	switch n := f.(type) {
	case Atom:
		return model[n.Name]
	case Not:
		return !Eval(n.Operand, model)
	case And:
		return Eval(n.Left, model) && Eval(n.Right, model)
	case Or:
		return Eval(n.Left, model) || Eval(n.Right, model)
	case Implies:
		return !Eval(n.Left, model) || Eval(n.Right, model)
	case Iff:
		return Eval(n.Left, model) == Eval(n.Right, model)
	case Top:
		return true
	default:
		return false
	}
}

// Atoms collects the names of every atom occurring in f.
func Atoms(f Formula) mapset.Set[string] {
	names := mapset.NewSet[string]()
	collectAtoms(f, names)
	return names
}

func collectAtoms(f Formula, names mapset.Set[string]) {
	switch n := f.(type) {
	case Atom:
		names.Add(n.Name)
	case Not:
		collectAtoms(n.Operand, names)
	case And:
		collectAtoms(n.Left, names)
		collectAtoms(n.Right, names)
	case Or:
		collectAtoms(n.Left, names)
		collectAtoms(n.Right, names)
	case Implies:
		collectAtoms(n.Left, names)
		collectAtoms(n.Right, names)
	case Iff:
		collectAtoms(n.Left, names)
		collectAtoms(n.Right, names)
	}
}
