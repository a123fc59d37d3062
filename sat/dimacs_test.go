package sat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimacs(t *testing.T) {
	type testcase struct {
		input  string
		expect string
	}

	cases := []testcase{
		{
			"(p ∨ q) ∧ ¬r",
			"p cnf 3 2\nc p=1\nc q=2\nc r=3\n1 2 0\n-3 0\n",
		},
		{
			"p",
			"p cnf 1 1\nc p=1\n1 0\n",
		},
		{
			"q ∧ p",
			"p cnf 2 2\nc p=2\nc q=1\n1 0\n2 0\n",
		},
		{
			"p → q",
			"p cnf 2 1\nc p=1\nc q=2\n-1 2 0\n",
		},
		{
			"⊤",
			"p cnf 0 0\n",
		},
		{
			"⊥",
			"p cnf 0 1\n0\n",
		},
	}

	for _, c := range cases {
		var b strings.Builder
		require.NoError(t, Dimacs(mustParse(t, c.input), &b), "input %q", c.input)
		assert.Equal(t, c.expect, b.String(), "input %q", c.input)
	}
}
