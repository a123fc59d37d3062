package formula

import "strings"

// TreeString renders f as an indented preorder dump, one node per line,
// two spaces per depth level. Connective nodes print their symbol, atoms
// and constants print themselves.
func TreeString(f Formula) string {
	var lines []string
	dump(f, 0, &lines)
	return strings.Join(lines, "\n")
}

func dump(f Formula, depth int, lines *[]string) {
	if f == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n := f.(type) {
	case Not:
		*lines = append(*lines, indent+"¬")
		dump(n.Operand, depth+1, lines)
	case And:
		*lines = append(*lines, indent+"∧")
		dump(n.Left, depth+1, lines)
		dump(n.Right, depth+1, lines)
	case Or:
		*lines = append(*lines, indent+"∨")
		dump(n.Left, depth+1, lines)
		dump(n.Right, depth+1, lines)
	case Implies:
		*lines = append(*lines, indent+"→")
		dump(n.Left, depth+1, lines)
		dump(n.Right, depth+1, lines)
	case Iff:
		*lines = append(*lines, indent+"↔")
		dump(n.Left, depth+1, lines)
		dump(n.Right, depth+1, lines)
	default:
		*lines = append(*lines, indent+f.String())
	}
}
