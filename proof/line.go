// Package proof implements the natural-deduction layer: parsing
// line-oriented proof text, verifying whole derivations against the rule
// catalog, and the standalone rule-application front end.
package proof

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"fitch/formula"
)

// Marker distinguishes the scope delimiter lines from content lines.
type Marker int

const (
	NoMarker Marker = iota
	BeginScope
	EndScope
)

// Ref is one reference in a rule clause: a single earlier line, or a
// closed start-end block when End is set.
type Ref struct {
	Start int
	End   int
}

// IsBlock reports whether the reference names a whole sub-derivation
// rather than a single line.
func (r Ref) IsBlock() bool { return r.End > 0 }

func (r Ref) String() string {
	if r.IsBlock() {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprintf("%d", r.Start)
}

// Line is one parsed proof line. Scope markers carry only Marker and
// Indent; content lines carry their number, declared formula and rule
// clause. Indent counts leading space pairs and is cosmetic.
type Line struct {
	Number  int
	Formula formula.Formula
	Rule    string
	Refs    []Ref
	Indent  int
	Marker  Marker
}

// clauseGrammar parses `Name` or `Name, ref(, ref)*` where a ref is an
// integer or an integer range. Rule names mix letters with connective
// symbols and may end in a digit (∧e1, ∨i2), so the name token admits
// digits everywhere but its first rune.
type clauseGrammar struct {
	Name string     `parser:"@Name"`
	Refs []reftoken `parser:"( ',' @@ )*"`
}

type reftoken struct {
	Start int  `parser:"@Int"`
	End   *int `parser:"( '-' @Int )?"`
}

var clauseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Name", Pattern: `[^\s,\-0-9][^\s,\-]*`},
	{Name: "Punct", Pattern: `[,\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var clauseParser = participle.MustBuild[clauseGrammar](
	participle.Lexer(clauseLexer),
	participle.Elide("Whitespace"),
)

// parseClause parses the rule field of a proof line.
func parseClause(s string) (string, []Ref, error) {
	parsed, err := clauseParser.ParseString("", s)
	if err != nil {
		return "", nil, fmt.Errorf("invalid rule clause %q: %w", s, err)
	}
	if len(parsed.Refs) == 0 {
		return parsed.Name, nil, nil
	}
	refs := make([]Ref, len(parsed.Refs))
	for i, r := range parsed.Refs {
		refs[i] = Ref{Start: r.Start}
		if r.End != nil {
			refs[i].End = *r.End
		}
	}
	return parsed.Name, refs, nil
}
