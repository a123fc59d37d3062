package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitch/formula"
	"fitch/sat"
)

// Accepted deductions are sound: the premises entail the final line.
func TestAcceptedDeductionsAreSound(t *testing.T) {
	proofs := []string{
		`1    p        Premise
2    q        Premise
3    p ∧ q        ∧i, 1, 2`,

		`1    p → q        Premise
2    p        Premise
3    q        →e, 1, 2`,

		`1    p        Premise
      BeginScope
 2      q        Assumption
 3      p        Copy, 1
      EndScope
 4    q → p        →i, 2-3`,

		`1    p → q        Premise
2    p → ¬q        Premise
      BeginScope
 3      p        Assumption
 4      q        →e, 1, 3
 5      ¬q        →e, 2, 3
 6      ⊥        ¬e, 4, 5
      EndScope
 7    ¬p        ¬i, 3-6`,

		`1    p → q        Premise
2    ¬q        Premise
3    ¬p        MT, 1, 2`,

		`1    p        Premise
2    ¬p        Premise
3    ⊥        ¬e, 1, 2
4    q        ⊥e, 3`,

		` 1    (¬p) ∨ q        Premise
      BeginScope
 2      ¬p        Assumption
        BeginScope
 3        p        Assumption
 4        ⊥        ¬e, 3, 2
 5        q        ⊥e, 4
        EndScope
 6      p → q        →i, 3-5
      EndScope
      BeginScope
 7      q        Assumption
        BeginScope
 8        p        Assumption
 9        q        Copy, 7
        EndScope
10      p → q        →i, 8-9
      EndScope
11    p → q        ∨e, 1, 2-6, 7-10`,

		`1    p        Premise
      BeginScope
 2      q        Assumption
        BeginScope
 3        r        Assumption
 4        p ∧ r        ∧i, 1, 3
        EndScope
 5      r → (p ∧ r)        →i, 3-4
      EndScope
 6    q → (r → (p ∧ r))        →i, 2-5`,

		`1    (p ∧ q) → r        Premise
2    p        Premise
3    q        Premise
4    p ∧ q        ∧i, 2, 3
5    r        →e, 1, 4
6    ¬(¬r)        ¬¬i, 5
7    r        ¬¬e, 6`,

		`1    p ∨ ¬p        LEM`,
	}

	for _, src := range proofs {
		require.Equal(t, "Valid Deduction", Verify(src), "proof:\n%s", src)

		lines, err := Parse(src)
		require.NoError(t, err)

		var premises []formula.Formula
		var conclusion formula.Formula
		for _, line := range lines {
			if line.Marker != NoMarker {
				continue
			}
			if line.Rule == "Premise" {
				premises = append(premises, line.Formula)
			}
			conclusion = line.Formula
		}
		require.NotNil(t, conclusion, "proof:\n%s", src)

		assert.True(t, sat.Entails(premises, conclusion), "proof:\n%s", src)
	}
}

func TestUnsupportedConclusionIsNotEntailed(t *testing.T) {
	src := `1    p        Premise
2    q        Copy, 1`
	assert.Equal(t, "Invalid Deduction at Line 2", Verify(src))

	p := formula.Atom{Name: "p"}
	q := formula.Atom{Name: "q"}
	assert.False(t, sat.Entails([]formula.Formula{p}, q))
}
