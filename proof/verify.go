package proof

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	log "github.com/sirupsen/logrus"

	"fitch/formula"
	"fitch/rules"
)

// Terminal results of a verification pass.
const (
	resultValid        = "Valid Deduction"
	resultInvalidLine  = "Invalid Deduction at Line %d"
	resultUnmatchedEnd = "Invalid Deduction: unmatched EndScope"
	resultBadFormat    = "Invalid input format: %v"
)

// refKind says how the verifier turns one reference into rule arguments.
type refKind int

const (
	refLine   refKind = iota // a single established line, yields its formula
	refBox                   // a closed block, yields its assumption and conclusion
	refBranch                // a closed block, yields only its conclusion
)

// plans maps every derivable rule to the reference shapes its clause must
// carry, in order, and whether the line's own declared formula joins the
// arguments as the target. Premise and Assumption have no plan: the
// verifier accepts them directly.
var plans = map[string]struct {
	refs   []refKind
	target bool
}{
	"∧i":   {refs: []refKind{refLine, refLine}},
	"∧e1":  {refs: []refKind{refLine}},
	"∧e2":  {refs: []refKind{refLine}},
	"→e":   {refs: []refKind{refLine, refLine}},
	"¬e":   {refs: []refKind{refLine, refLine}},
	"¬¬e":  {refs: []refKind{refLine}},
	"¬¬i":  {refs: []refKind{refLine}},
	"MT":   {refs: []refKind{refLine, refLine}},
	"Copy": {refs: []refKind{refLine}},
	"∨i1":  {refs: []refKind{refLine}, target: true},
	"∨i2":  {refs: []refKind{refLine}, target: true},
	"⊥e":   {refs: []refKind{refLine}, target: true},
	"LEM":  {target: true},
	"∨e":   {refs: []refKind{refLine, refBranch, refBranch}},
	"→i":   {refs: []refKind{refBox}},
	"¬i":   {refs: []refKind{refBox}},
	"PBC":  {refs: []refKind{refBox}},
}

// verifier is the state of one verification pass: every line number that
// ever verified, the stack of per-scope number sets (base level first)
// and the number → line index.
type verifier struct {
	established mapset.Set[int]
	scopes      []mapset.Set[int]
	lines       map[int]Line
}

// Verify checks a whole derivation and reports the outcome as one of the
// four result strings. Lines are processed in order; the first failing
// line ends the pass. An EndScope with no open scope aborts immediately;
// scopes left open at the end of the text are accepted.
func Verify(src string) string {
	lines, err := Parse(src)
	if err != nil {
		return fmt.Sprintf(resultBadFormat, err)
	}
	v := &verifier{
		established: mapset.NewSet[int](),
		scopes:      []mapset.Set[int]{mapset.NewSet[int]()},
		lines:       make(map[int]Line, len(lines)),
	}
	for _, line := range lines {
		if line.Marker == NoMarker {
			v.lines[line.Number] = line
		}
	}
	for _, line := range lines {
		switch line.Marker {
		case BeginScope:
			v.scopes = append(v.scopes, mapset.NewSet[int]())
			continue
		case EndScope:
			if len(v.scopes) == 1 {
				log.Debug("EndScope with no open scope")
				return resultUnmatchedEnd
			}
			v.scopes = v.scopes[:len(v.scopes)-1]
			continue
		}
		if err := v.check(line); err != nil {
			log.Debugf("line %d rejected: %v", line.Number, err)
			return fmt.Sprintf(resultInvalidLine, line.Number)
		}
		v.established.Add(line.Number)
		// Premises support the whole proof, whatever scope they appear in.
		if line.Rule == "Premise" {
			v.scopes[0].Add(line.Number)
		} else {
			v.scopes[len(v.scopes)-1].Add(line.Number)
		}
	}
	return resultValid
}

// check establishes one content line: premises and assumptions stand on
// their own; every other line must name a known rule, resolve its
// references and derive exactly its declared formula.
func (v *verifier) check(line Line) error {
	if line.Rule == "Premise" || line.Rule == "Assumption" {
		return nil
	}
	rule, ok := rules.Lookup(line.Rule)
	if !ok {
		return fmt.Errorf("rule %q not found", line.Rule)
	}
	args, err := v.resolve(line)
	if err != nil {
		return err
	}
	result, err := rule.Apply(args...)
	if err != nil {
		return err
	}
	if !formula.Equal(result, line.Formula) {
		return fmt.Errorf("%s derives %s, line declares %s", line.Rule, result, line.Formula)
	}
	return nil
}

// resolve turns the line's references into the rule's ordered arguments
// following the rule's plan.
func (v *verifier) resolve(line Line) ([]formula.Formula, error) {
	plan, ok := plans[line.Rule]
	if !ok {
		return nil, fmt.Errorf("rule %q cannot justify a proof line", line.Rule)
	}
	if len(line.Refs) != len(plan.refs) {
		return nil, fmt.Errorf("%s takes %d references, got %d", line.Rule, len(plan.refs), len(line.Refs))
	}
	args := make([]formula.Formula, 0, len(plan.refs)+1)
	for i, ref := range line.Refs {
		switch plan.refs[i] {
		case refLine:
			f, err := v.lineFormula(ref)
			if err != nil {
				return nil, err
			}
			args = append(args, f)
		case refBox:
			assumption, conclusion, err := v.blockFormulas(ref)
			if err != nil {
				return nil, err
			}
			args = append(args, assumption, conclusion)
		case refBranch:
			_, conclusion, err := v.blockFormulas(ref)
			if err != nil {
				return nil, err
			}
			args = append(args, conclusion)
		}
	}
	if plan.target {
		args = append(args, line.Formula)
	}
	// The case boxes of a disjunction elimination must be sibling
	// derivations: the first must close before the second opens.
	if line.Rule == "∨e" && line.Refs[1].End >= line.Refs[2].Start {
		return nil, fmt.Errorf("branch blocks %s and %s overlap", line.Refs[1], line.Refs[2])
	}
	return args, nil
}

// lineFormula resolves a single-line reference. The line must sit in a
// scope that is still open: once a scope closes, its interior is only
// reachable through a block reference.
func (v *verifier) lineFormula(ref Ref) (formula.Formula, error) {
	if ref.IsBlock() {
		return nil, fmt.Errorf("reference %s must name a single line", ref)
	}
	for _, level := range v.scopes {
		if level.Contains(ref.Start) {
			return v.lines[ref.Start].Formula, nil
		}
	}
	return nil, fmt.Errorf("line %d is not available here", ref.Start)
}

// blockFormulas resolves a start-end block reference to the block's
// assumption and conclusion. The opening line must be an Assumption and
// every line numbered inside the block must already be established; the
// block's own scope may be open or closed.
func (v *verifier) blockFormulas(ref Ref) (formula.Formula, formula.Formula, error) {
	if !ref.IsBlock() {
		return nil, nil, fmt.Errorf("reference %d must name a block", ref.Start)
	}
	if ref.Start > ref.End {
		return nil, nil, fmt.Errorf("block %s is empty", ref)
	}
	start, ok := v.lines[ref.Start]
	if !ok || start.Rule != "Assumption" {
		return nil, nil, fmt.Errorf("block %s does not open with an assumption", ref)
	}
	for n := ref.Start; n <= ref.End; n++ {
		if !v.established.Contains(n) {
			return nil, nil, fmt.Errorf("line %d of block %s is not established", n, ref)
		}
	}
	return start.Formula, v.lines[ref.End].Formula, nil
}
