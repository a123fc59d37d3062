package proof

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"fitch/formula"
)

// Content lines hold three fields separated by runs of at least two
// spaces; the formula and the rule clause only ever contain single
// spaces internally.
var fieldSep = regexp.MustCompile(`\s{2,}`)

// Parse turns proof text into its lines. Blank lines are skipped; a line
// reading exactly BeginScope or EndScope is a scope marker; any other
// line must be a line number, a formula and a rule clause. The first
// malformed line aborts the parse.
func Parse(src string) ([]Line, error) {
	var lines []Line
	seen := mapset.NewSet[int]()
	for _, raw := range strings.Split(src, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		indent := countIndent(raw)
		switch text {
		case "BeginScope":
			lines = append(lines, Line{Marker: BeginScope, Indent: indent})
			continue
		case "EndScope":
			lines = append(lines, Line{Marker: EndScope, Indent: indent})
			continue
		}
		line, err := parseContentLine(text, indent)
		if err != nil {
			return nil, err
		}
		if !seen.Add(line.Number) {
			return nil, fmt.Errorf("duplicate line number %d", line.Number)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseContentLine(text string, indent int) (Line, error) {
	fields := fieldSep.Split(text, -1)
	if len(fields) != 3 {
		return Line{}, fmt.Errorf("line %q: want number, formula and rule separated by two or more spaces", text)
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return Line{}, fmt.Errorf("line %q: bad line number %q", text, fields[0])
	}
	f, err := formula.Parse(fields[1])
	if err != nil {
		return Line{}, fmt.Errorf("line %q: %v", text, err)
	}
	rule, refs, err := parseClause(fields[2])
	if err != nil {
		return Line{}, fmt.Errorf("line %q: %v", text, err)
	}
	return Line{
		Number:  number,
		Formula: f,
		Rule:    rule,
		Refs:    refs,
		Indent:  indent,
	}, nil
}

func countIndent(raw string) int {
	spaces := 0
	for _, r := range raw {
		if r != ' ' {
			break
		}
		spaces++
	}
	return spaces / 2
}
