// Package model implements the declarative, data-driven pushdown automaton
// description that drives the tokenizer: groups, states, transitions and
// the region/template graph they live in.
package model

import "strings"

// Group is a named terminal pattern matched at the current input position.
// A Group never anchors on its own; the containing State wraps every
// group's regex in a named capture and anchors the compound pattern.
type Group struct {
	Name  string
	Regex string
}

// NewGroup builds a generic group from an arbitrary (unanchored) pattern.
func NewGroup(name, regex string) *Group {
	return &Group{Name: name, Regex: regex}
}

// NewKeywordGroup builds a group matching the alternation of the given
// literal keywords, escaping '|' inside each literal.
func NewKeywordGroup(name string, keywords ...string) *Group {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = strings.ReplaceAll(kw, "|", `\|`)
	}
	return &Group{Name: name, Regex: strings.Join(escaped, "|")}
}

// Keyword reports whether this group's regex has NewKeywordGroup's
// alternation-of-escaped-literals shape, i.e. whether it matches a fixed
// vocabulary rather than an open-ended pattern. Best effort: a regex
// authored by hand can coincidentally have the same shape.
func (g *Group) Keyword() bool {
	if g.Regex == "" {
		return false
	}
	for _, r := range g.Regex {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '|', r == '_', r == '-', r == '\\':
		default:
			return false
		}
	}
	return true
}

func (g *Group) String() string {
	return g.Name
}

// Predefined is the process-wide vocabulary available to every Model
// unless shadowed by a Model-, region-, or state-level group_defs entry.
var Predefined = map[string]*Group{
	"Generic":       NewGroup("Generic", `[^\s]+`),
	"Integer":       NewGroup("Integer", `-?\d+`),
	"Float":         NewGroup("Float", `\d*\.\d+`),
	"Range":         NewGroup("Range", `-?\d+\.{2}(?:-?\d+)?|(?:-?\d+)?\.{2}-?\d+`),
	"RelativeFloat": NewGroup("RelativeFloat", `[~^]?\d*\.?\d+|[~^]`),
	"Number":        NewGroup("Number", `-?\d*\.?\d+[BbDdFfLlSs]?`),
	"Word":          NewGroup("Word", `\w+`),
	"String":        NewGroup("String", `"(?:\\.|[^"])*"|'(?:\\.|[^'])*'`),
	"Selector":      NewGroup("Selector", `@[aeprs]`),
	"NamespacedID":  NewGroup("NamespacedID", `[a-z0-9_.-]+(?::[a-z0-9_./-]+)?`),
}
