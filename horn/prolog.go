package horn

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/ichiban/prolog"

	"fitch/formula"
	"fitch/graph"
)

func quote(atom string) string {
	return "'" + atom + "'"
}

func clauseHead(c Clause) string {
	if c.Goal {
		return "bottom"
	}
	return quote(c.Head)
}

func clauseBody(body []string) string {
	parts := make([]string, len(body))
	for i, atom := range body {
		parts[i] = quote(atom)
	}
	return strings.Join(parts, ", ")
}

func newTemplate(name, content string) *template.Template {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"quote":      quote,
		"clauseHead": clauseHead,
		"clauseBody": clauseBody,
	}).Parse(content)
	if err != nil {
		panic(err)
	}
	return tmpl
}

func templateToString(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

// Every atom is declared dynamic so that querying an underivable one
// fails instead of raising an existence error; bottom is declared even
// when no goal clause defines it, for the same reason.
var programTemplate = newTemplate("horn-program", `{{ range .Atoms }}:- dynamic({{ quote . }}/0).
{{ end }}:- dynamic(bottom/0).

{{ range .Clauses }}{{ clauseHead . }}{{ with .Body }} :- {{ clauseBody . }}{{ end }}.
{{ end }}`)

// Program renders the clauses as a Prolog program: facts for empty
// bodies, rules otherwise, and bottom for the goal heads. Atom names are
// quoted, so any letter the formula alphabet admits is a safe functor.
func Program(clauses []Clause) string {
	return templateToString(programTemplate, struct {
		Atoms   []string
		Clauses []Clause
	}{atomNames(clauses), clauses})
}

// atomNames collects every atom the clauses mention, sorted.
func atomNames(clauses []Clause) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, clause := range clauses {
		if !clause.Goal {
			add(clause.Head)
		}
		for _, atom := range clause.Body {
			add(atom)
		}
	}
	sort.Strings(names)
	return names
}

// Backend answers Horn queries by SLD resolution over the rendered
// program.
type Backend struct {
	prolog *prolog.Interpreter
}

// NewBackend consults the clauses into a fresh interpreter. A cyclic
// clause set is refused up front: SLD resolution recurses forever on it,
// and the caller must fall back to the marking solver.
func NewBackend(clauses []Clause) (*Backend, error) {
	if cyclic(clauses) {
		return nil, fmt.Errorf("clause dependencies form a cycle")
	}
	p := prolog.New(nil, nil)
	if err := p.Exec(Program(clauses)); err != nil {
		return nil, fmt.Errorf("consult horn program: %w", err)
	}
	return &Backend{prolog: p}, nil
}

// cyclic reports whether some atom can reach itself through clause
// bodies. Goal clauses cannot close a cycle: ⊥ never occurs in a body.
func cyclic(clauses []Clause) bool {
	index := make(map[string]int)
	id := func(name string) int {
		if v, ok := index[name]; ok {
			return v
		}
		index[name] = len(index)
		return index[name]
	}
	for _, clause := range clauses {
		if !clause.Goal {
			id(clause.Head)
		}
		for _, atom := range clause.Body {
			id(atom)
		}
	}
	g := graph.New(len(index))
	for _, clause := range clauses {
		if clause.Goal {
			continue
		}
		for _, atom := range clause.Body {
			g.AddEdge(index[clause.Head], index[atom])
		}
	}
	return g.HasCycle()
}

// Derivable reports whether the clauses force the atom true.
func (b *Backend) Derivable(atom string) (bool, error) {
	return b.ask(quote(atom) + ".")
}

// Inconsistent reports whether the clauses derive ⊥.
func (b *Backend) Inconsistent() (bool, error) {
	return b.ask("bottom.")
}

func (b *Backend) ask(query string) (bool, error) {
	solutions, err := b.prolog.Query(query)
	if err != nil {
		return false, err
	}
	found := solutions.Next()
	if err := solutions.Close(); err != nil {
		return false, err
	}
	return found, nil
}

// CheckSLD answers Check through the Prolog backend: Inconsistent decides
// the verdict and Derivable rebuilds the model atom by atom. Inputs whose
// clause dependencies are cyclic cannot be resolved this way and come
// back as an error.
func CheckSLD(input string) (string, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "Satisfiable", nil
	}
	f, err := formula.Parse(text)
	if err != nil {
		return fmt.Sprintf("Invalid Horn Formula: %v", err), nil
	}
	clauses, err := Extract(f)
	if err != nil {
		return fmt.Sprintf("Invalid Horn Formula: %v", err), nil
	}
	backend, err := NewBackend(clauses)
	if err != nil {
		return "", err
	}
	inconsistent, err := backend.Inconsistent()
	if err != nil {
		return "", err
	}
	if inconsistent {
		return "Unsatisfiable", nil
	}
	var model []string
	for _, atom := range atomNames(clauses) {
		derivable, err := backend.Derivable(atom)
		if err != nil {
			return "", err
		}
		if derivable {
			model = append(model, atom)
		}
	}
	if len(model) == 0 {
		return "Satisfiable", nil
	}
	return fmt.Sprintf("Satisfiable\n{%s}", strings.Join(model, ", ")), nil
}
