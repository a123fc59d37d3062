package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	type testcase struct {
		a, b  string
		equal bool
	}

	cases := []testcase{
		{"a", "a", true},
		{"a", "b", false},
		{"a ∧ b", "a ∧ b", true},
		{"a ∧ b", "b ∧ a", true},
		{"a ∨ b", "b ∨ a", true},
		{"(a ∧ b) ∨ c", "c ∨ (b ∧ a)", true},
		{"a ∧ (b ∨ c)", "(c ∨ b) ∧ a", true},
		{"a → b", "b → a", false},
		{"a ↔ b", "b ↔ a", false},
		{"a → b", "a → b", true},
		{"¬(a ∧ b)", "¬(b ∧ a)", true},
		{"a ∧ b", "a ∨ b", false},
		{"a ∧ (b ∧ c)", "(a ∧ b) ∧ c", false},
		{"⊥", "⊥", true},
		{"⊤", "⊥", false},
		{"¬a", "a", false},
	}

	for _, tc := range cases {
		fa, err := Parse(tc.a)
		require.NoError(t, err)
		fb, err := Parse(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.equal, Equal(fa, fb), "%q vs %q", tc.a, tc.b)
	}
}

func TestEqualNil(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Atom{Name: "a"}, nil))
	assert.False(t, Equal(nil, Atom{Name: "a"}))
}

func TestClone(t *testing.T) {
	f, err := Parse("¬(a ∧ b) → (c ∨ ⊥)")
	require.NoError(t, err)
	g := Clone(f)
	assert.Equal(t, f, g)
	assert.True(t, Equal(f, g))
	assert.Nil(t, Clone(nil))
}

func TestEval(t *testing.T) {
	type testcase struct {
		input  string
		model  map[string]bool
		expect bool
	}

	cases := []testcase{
		{"a", map[string]bool{"a": true}, true},
		{"a", map[string]bool{}, false},
		{"¬a", map[string]bool{"a": false}, true},
		{"a ∧ b", map[string]bool{"a": true, "b": true}, true},
		{"a ∧ b", map[string]bool{"a": true}, false},
		{"a ∨ b", map[string]bool{"b": true}, true},
		{"a → b", map[string]bool{"a": false}, true},
		{"a → b", map[string]bool{"a": true}, false},
		{"a ↔ b", map[string]bool{}, true},
		{"⊤", nil, true},
		{"⊥", nil, false},
		{"⊤ → ⊥", nil, false},
	}

	for _, tc := range cases {
		f, err := Parse(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, Eval(f, tc.model), "input %q under %v", tc.input, tc.model)
	}
}

func TestAtoms(t *testing.T) {
	f, err := Parse("(p → q) ∧ (¬p ∨ r) ∧ ⊥")
	require.NoError(t, err)
	names := Atoms(f)
	assert.ElementsMatch(t, []string{"p", "q", "r"}, names.ToSlice())
}
