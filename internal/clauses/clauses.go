// Package clauses holds the contract clause library handed to the drafter.
// A Set is read-only once built; selection of which clause answers which
// question is left to the drafting prompt, not to code.
package clauses

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Clause struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Set is an ordered collection of named clauses. Order is preserved from the
// source so prompt rendering stays deterministic.
type Set struct {
	clauses []Clause
}

// Load reads a clause library from a YAML file: a list of {name, text} entries.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read clause file: %w", err)
	}

	var list []Clause
	if err := yaml.Unmarshal(data, &list); err != nil {
		return Set{}, fmt.Errorf("parse clause file: %w", err)
	}
	if len(list) == 0 {
		return Set{}, fmt.Errorf("clause file %s contains no clauses", path)
	}

	return Set{clauses: list}, nil
}

// Default returns the built-in Master Services Agreement termination and
// notice clauses used when no clause file is configured.
func Default() Set {
	return Set{clauses: []Clause{
		{
			Name: "9.1",
			Text: "Either Party may terminate this Agreement for cause upon thirty (30) days' written notice if the other Party commits a material breach.",
		},
		{
			Name: "9.2",
			Text: "Repeated failure to meet delivery timelines constitutes a material breach.",
		},
		{
			Name: "10.1",
			Text: "All notices shall be given in writing and shall be effective upon receipt.",
		},
		{
			Name: "10.2",
			Text: "For termination, minimum thirty (30) days' prior written notice is required.",
		},
	}}
}

func (s Set) Len() int {
	return len(s.clauses)
}

// Render formats the set as prompt text, one clause per line, in source order.
func (s Set) Render() string {
	var b strings.Builder
	for _, c := range s.clauses {
		fmt.Fprintf(&b, "Clause %s: %s\n", c.Name, c.Text)
	}
	return b.String()
}
