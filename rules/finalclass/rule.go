// Package finalclass flags class-scoped methods and properties whose
// class modifier is redundant: either the enclosing class is final, so the
// member can never be overridden anyway, or the member is private and thus
// invisible to subclasses. Autocorrection replaces the class keyword with
// the configured non-overridable form, final or static.
package finalclass

import (
	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/swift"
)

// RuleName identifies this rule in configuration and suppression
// directives.
const RuleName = "final_class_member"

// Rule implements linter.Rule
type Rule struct {
	config linter.RuleConfig
}

// New creates the rule with its effective configuration
func New(config linter.RuleConfig) *Rule {
	return &Rule{config: config}
}

// Name returns the rule identifier
func (r *Rule) Name() string {
	return RuleName
}

// Check traverses the tree once and reports every redundant class
// modifier, in source order.
func (r *Rule) Check(tree *swift.Tree) []linter.Violation {
	return violations(traverse(tree), tree.Locator, r.config.Severity)
}

// Correct rewrites every non-suppressed redundant class modifier with the
// configured replacement keyword and returns the new contents. The
// returned corrections are in application order, end of file first.
func (r *Rule) Correct(tree *swift.Tree, filter linter.Filter) ([]byte, []linter.Correction) {
	return applyCorrections(tree.Source, edits(traverse(tree)), tree.Locator, filter, r.replacement())
}

// replacement is the literal text substituted for the class keyword. In
// final mode the keyword is kept and prefixed, so class func stays a type
// member; in static mode the keyword is replaced outright.
func (r *Rule) replacement() string {
	if r.config.FinalClassModifier == "static" {
		return "static"
	}
	return "final class"
}
