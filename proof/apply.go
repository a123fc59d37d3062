package proof

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"fitch/formula"
	"fitch/rules"
)

const resultNotApplicable = "Rule Cannot Be Applied"

// ApplyText runs a single rule application. The input lists numbered
// formulas, one per line, and ends with a rule clause whose references
// pick the arguments by number. On success the derived formula is
// returned in canonical notation; any failure, from bad input to a rule
// violation, reports that the rule cannot be applied.
func ApplyText(src string) string {
	result, err := applyText(src)
	if err != nil {
		log.Debugf("rule application rejected: %v", err)
		return resultNotApplicable
	}
	return result.String()
}

func applyText(src string) (formula.Formula, error) {
	var texts []string
	for _, raw := range strings.Split(src, "\n") {
		if text := strings.TrimSpace(raw); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no rule clause")
	}
	env, err := parseEnvironment(texts[:len(texts)-1])
	if err != nil {
		return nil, err
	}
	name, refs, err := parseClause(texts[len(texts)-1])
	if err != nil {
		return nil, err
	}
	rule, ok := rules.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("rule %q not found", name)
	}
	args := make([]formula.Formula, len(refs))
	for i, ref := range refs {
		if ref.IsBlock() {
			return nil, fmt.Errorf("reference %s must name a single line", ref)
		}
		f, ok := env[ref.Start]
		if !ok {
			return nil, fmt.Errorf("no line numbered %d", ref.Start)
		}
		args[i] = f
	}
	return rule.Apply(args...)
}

// parseEnvironment reads the numbered formula lines preceding the clause.
func parseEnvironment(texts []string) (map[int]formula.Formula, error) {
	env := make(map[int]formula.Formula, len(texts))
	for _, text := range texts {
		fields := fieldSep.Split(text, -1)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %q: want number and formula separated by two or more spaces", text)
		}
		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %q: bad line number %q", text, fields[0])
		}
		if _, ok := env[number]; ok {
			return nil, fmt.Errorf("duplicate line number %d", number)
		}
		f, err := formula.Parse(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %q: %v", text, err)
		}
		env[number] = f
	}
	return env, nil
}
