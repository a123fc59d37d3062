package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentLine(t *testing.T) {
	type testcase struct {
		input   string
		number  int
		formula string
		rule    string
		refs    []Ref
	}

	cases := []testcase{
		{"1    p        Premise", 1, "p", "Premise", nil},
		{"2  q  Assumption", 2, "q", "Assumption", nil},
		{"3    p ∧ q        ∧i, 1, 2", 3, "p ∧ q", "∧i", []Ref{{Start: 1}, {Start: 2}}},
		{"4    p        ∧e1, 3", 4, "p", "∧e1", []Ref{{Start: 3}}},
		{"6    p → q        →i, 3-5", 6, "p → q", "→i", []Ref{{Start: 3, End: 5}}},
		{"11    p → q        ∨e, 1, 2-6, 7-10", 11, "p → q", "∨e",
			[]Ref{{Start: 1}, {Start: 2, End: 6}, {Start: 7, End: 10}}},
		{"2    (¬p) ∨ p        LEM", 2, "¬p ∨ p", "LEM", nil},
		{"12    ⊥        ¬e, 11, 6", 12, "⊥", "¬e", []Ref{{Start: 11}, {Start: 6}}},
	}

	for _, c := range cases {
		lines, err := Parse(c.input)
		require.NoError(t, err, "input %q", c.input)
		require.Len(t, lines, 1, "input %q", c.input)
		line := lines[0]
		assert.Equal(t, NoMarker, line.Marker, "input %q", c.input)
		assert.Equal(t, c.number, line.Number, "input %q", c.input)
		assert.Equal(t, c.formula, line.Formula.String(), "input %q", c.input)
		assert.Equal(t, c.rule, line.Rule, "input %q", c.input)
		assert.Equal(t, c.refs, line.Refs, "input %q", c.input)
	}
}

func TestParseMarkers(t *testing.T) {
	src := ` 1    p        Premise
      BeginScope
 2      q        Assumption
      EndScope
 3    q → q        →i, 2-2`

	lines, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	assert.Equal(t, NoMarker, lines[0].Marker)
	assert.Equal(t, BeginScope, lines[1].Marker)
	assert.Equal(t, NoMarker, lines[2].Marker)
	assert.Equal(t, EndScope, lines[3].Marker)
	assert.Equal(t, NoMarker, lines[4].Marker)

	// Markers are indented six spaces here; content lines carry only the
	// right-aligned number column, which is not an indent pair.
	assert.Equal(t, 3, lines[1].Indent)
	assert.Equal(t, 0, lines[2].Indent)
	assert.Equal(t, 0, lines[4].Indent)
}

func TestParseSkipsBlankLines(t *testing.T) {
	lines, err := Parse("\n\n1    p        Premise\n\n")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	lines, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseErrors(t *testing.T) {
	type testcase struct {
		name  string
		input string
	}

	cases := []testcase{
		{"free text", "invalid line format"},
		{"missing rule field", "1    p"},
		{"single-space separators", "1 p Premise"},
		{"bad line number", "one    p        Premise"},
		{"bad formula", "1    p ∧        Premise"},
		{"bad clause", "1    p        ∧i, x"},
		{"clause trailing comma", "1    p        ∧i, 1,"},
		{"duplicate line number", "1    p        Premise\n1    q        Premise"},
	}

	for _, c := range cases {
		_, err := Parse(c.input)
		assert.Error(t, err, "case %s", c.name)
	}
}

func TestParseClauseRefShapes(t *testing.T) {
	name, refs, err := parseClause("∨e, 1, 2-6, 7-10")
	require.NoError(t, err)
	assert.Equal(t, "∨e", name)
	require.Len(t, refs, 3)
	assert.False(t, refs[0].IsBlock())
	assert.True(t, refs[1].IsBlock())
	assert.Equal(t, "2-6", refs[1].String())
	assert.Equal(t, "1", refs[0].String())

	name, refs, err = parseClause("LEM")
	require.NoError(t, err)
	assert.Equal(t, "LEM", name)
	assert.Empty(t, refs)

	name, refs, err = parseClause("∨i2, 5")
	require.NoError(t, err)
	assert.Equal(t, "∨i2", name)
	assert.Equal(t, []Ref{{Start: 5}}, refs)
}
