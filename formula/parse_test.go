package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShapes(t *testing.T) {
	type testcase struct {
		input  string
		expect Formula
	}

	a, b, c, p, q, r := Atom{Name: "a"}, Atom{Name: "b"}, Atom{Name: "c"}, Atom{Name: "p"}, Atom{Name: "q"}, Atom{Name: "r"}

	cases := []testcase{
		{"a", a},
		{"((((((((a))))))))", a},
		{"¬a", Not{Operand: a}},
		{"¬¬a", Not{Operand: Not{Operand: a}}},
		{"¬(¬a)", Not{Operand: Not{Operand: a}}},
		{"a ∧ b", And{Left: a, Right: b}},
		{"a ∧ b ∧ c", And{Left: And{Left: a, Right: b}, Right: c}},
		{"a ∧ (b ∧ c)", And{Left: a, Right: And{Left: b, Right: c}}},
		{"a ∧ b ∨ c", Or{Left: And{Left: a, Right: b}, Right: c}},
		{"a ∨ b ∧ c", Or{Left: a, Right: And{Left: b, Right: c}}},
		{"a → b → c", Implies{Left: Implies{Left: a, Right: b}, Right: c}},
		{"a → b ↔ c", Iff{Left: Implies{Left: a, Right: b}, Right: c}},
		{"¬a ∨ b", Or{Left: Not{Operand: a}, Right: b}},
		{"¬(a ∨ b)", Not{Operand: Or{Left: a, Right: b}}},
		{"⊥ → a", Implies{Left: Bottom{}, Right: a}},
		{"⊤", Top{}},
		{"((¬q → r) ∧ (p ∧ ¬r))", And{
			Left:  Implies{Left: Not{Operand: q}, Right: r},
			Right: And{Left: p, Right: Not{Operand: r}},
		}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expect, got, "input %q", tc.input)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "(p ∧ q", "a b", "¬ ∧ q", "a ∧ 1"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestCanonicalString(t *testing.T) {
	type testcase struct {
		input  string
		expect string
	}

	cases := []testcase{
		{"((((((((a))))))))", "a"},
		{"¬(¬a)", "¬¬a"},
		{"(a ∧ b) ∧ c", "a ∧ b ∧ c"},
		{"a ∧ (b ∧ c)", "a ∧ (b ∧ c)"},
		{"(a ∨ b) ∧ c", "(a ∨ b) ∧ c"},
		{"a ∨ (b ∧ c)", "a ∨ b ∧ c"},
		{"((¬q) → r) ∧ (p ∧ (¬r))", "(¬q → r) ∧ (p ∧ ¬r)"},
		{"¬(a → b)", "¬(a → b)"},
		{"(p → (¬((¬r) ∧ q))) ∨ s", "(p → ¬(¬r ∧ q)) ∨ s"},
		{"a → (b → c)", "a → (b → c)"},
		{"(a → b) → c", "a → b → c"},
		{"⊤ ∧ ¬⊥", "⊤ ∧ ¬⊥"},
	}

	for _, tc := range cases {
		f, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expect, f.String(), "input %q", tc.input)
	}
}

// Printing then reparsing must reproduce the same tree, and reprinting the
// reparsed tree must reproduce the same text.
func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"¬¬¬a",
		"a ∧ b ∨ c → d ↔ e",
		"a ↔ b ↔ c",
		"(a ∨ b) ∧ (c ∨ d)",
		"¬(p ∧ q) → (¬p ∨ ¬q)",
		"p → (q → (r → s))",
		"((¬q → r) ∧ (p ∧ ¬r))",
		"⊥ ∨ ⊤ ∨ x",
	}

	for _, input := range inputs {
		f, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		printed := f.String()
		g, err := Parse(printed)
		require.NoError(t, err, "printed %q", printed)
		assert.Equal(t, f, g, "round trip of %q via %q", input, printed)
		assert.Equal(t, printed, g.String(), "second print of %q", input)
	}
}

func TestTreeString(t *testing.T) {
	type testcase struct {
		input  string
		expect string
	}

	cases := []testcase{
		{"a", "a"},
		{"¬(¬a)", "¬\n  ¬\n    a"},
		{
			"((¬q → r) ∧ (p ∧ ¬r))",
			"∧\n  →\n    ¬\n      q\n    r\n  ∧\n    p\n    ¬\n      r",
		},
		{
			"(p → (¬((¬r) ∧ q))) ∨ s",
			"∨\n  →\n    p\n    ¬\n      ∧\n        ¬\n          r\n        q\n  s",
		},
		{"⊥", "⊥"},
	}

	for _, tc := range cases {
		f, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expect, TreeString(f), "input %q", tc.input)
	}
}
