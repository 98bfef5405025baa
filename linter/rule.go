package linter

import (
	"github.com/swiftcheck/swiftcheck/swift"
)

// Rule checks one structural pattern over a parsed Swift file and can
// rewrite the offending text in place.
type Rule interface {
	// Name returns the rule identifier used in configuration and in
	// suppression directives.
	Name() string

	// Check traverses the tree and returns the violations found, in
	// source order.
	Check(tree *swift.Tree) []Violation

	// Correct rewrites the tree's source, skipping ranges the filter
	// reports as disabled, and returns the new contents together with one
	// correction record per applied edit. Corrections are returned in
	// application order, end of file first.
	Correct(tree *swift.Tree, filter Filter) ([]byte, []Correction)
}

// Registry holds the set of rules a lint run executes
type Registry struct {
	rules []Rule
}

// NewRegistry creates a registry with the given rules
func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

// Add registers a rule
func (r *Registry) Add(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules
func (r *Registry) Rules() []Rule {
	return r.rules
}
