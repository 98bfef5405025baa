package finalclass

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/swift"
)

// flagged describes one method or property declaration whose class
// modifier the rule found redundant. Violations and correction edits are
// both derived from this single list, which keeps their cardinality in
// lockstep.
type flagged struct {
	kind         swift.NodeKind // KindFunction or KindProperty
	modifier     swift.Modifier // the offending class modifier token
	inFinalClass bool           // true: enclosing class is final; false: declaration is private
}

// visitor performs a single depth-first traversal of one file, tracking
// the finality of each enclosing class-like scope on an explicit stack.
// A visitor instance is owned by exactly one traversal; concurrent files
// each get their own.
type visitor struct {
	source   []byte
	finality []bool
	flags    []flagged
}

// traverse walks the tree and returns the flagged declarations in source
// order. The finality stack is empty again when it returns.
func traverse(tree *swift.Tree) []flagged {
	v := &visitor{source: tree.Source}
	v.walk(tree.Root)
	return v.flags
}

func (v *visitor) walk(node *sitter.Node) {
	switch swift.KindOf(node) {
	case swift.KindProtocol:
		// Protocol bodies reuse the class keyword for requirements; the
		// whole subtree is out of scope for this rule.
		return
	case swift.KindClass:
		modifiers := swift.Modifiers(node, v.source)
		v.finality = append(v.finality, swift.HasModifier(modifiers, "final"))
		v.walkChildren(node)
		v.finality = v.finality[:len(v.finality)-1]
	case swift.KindFunction, swift.KindProperty:
		// Children first: accessor bodies may hold nested classes, and the
		// declaration itself is evaluated once its subtree is complete.
		v.walkChildren(node)
		v.evaluate(node, swift.KindOf(node))
	default:
		v.walkChildren(node)
	}
}

func (v *visitor) walkChildren(node *sitter.Node) {
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		v.walk(node.NamedChild(int(i)))
	}
}

// evaluate applies the redundancy predicate to one method or property
// declaration.
func (v *visitor) evaluate(node *sitter.Node, kind swift.NodeKind) {
	modifiers := swift.Modifiers(node, v.source)
	if swift.HasModifier(modifiers, "final") {
		return
	}
	classMod, ok := swift.FindModifier(modifiers, "class")
	if !ok {
		return
	}
	// No enclosing class-like scope: the modifier cannot be checked
	// against anything, skip. Not reachable from well-formed Swift.
	if len(v.finality) == 0 {
		return
	}

	inFinalClass := v.finality[len(v.finality)-1]
	isPrivate := swift.HasModifier(modifiers, "private") ||
		swift.HasModifier(modifiers, "fileprivate")
	if !inFinalClass && !isPrivate {
		return
	}

	v.flags = append(v.flags, flagged{
		kind:         kind,
		modifier:     classMod,
		inFinalClass: inFinalClass,
	})
}

// violations derives the violation list from the flagged declarations.
// Declarations whose modifier position cannot be resolved are dropped
// individually.
func violations(flags []flagged, locator *swift.Locator, severity linter.Severity) []linter.Violation {
	var result []linter.Violation
	for _, f := range flags {
		position, err := locator.PositionAt(f.modifier.Start)
		if err != nil {
			continue
		}
		result = append(result, linter.Violation{
			Rule:     RuleName,
			Position: position,
			Message:  message(f.kind, f.inFinalClass),
			Severity: severity,
		})
	}
	return result
}

// edits derives the correction edits from the flagged declarations, one
// per flag, each spanning exactly the class modifier keyword.
func edits(flags []flagged) []edit {
	result := make([]edit, 0, len(flags))
	for _, f := range flags {
		result = append(result, edit{start: f.modifier.Start, end: f.modifier.End})
	}
	return result
}

func message(kind swift.NodeKind, inFinalClass bool) string {
	noun := "methods"
	if kind == swift.KindProperty {
		noun = "properties"
	}
	if inFinalClass {
		return "Class " + noun + " in final classes should themselves be final"
	}
	return "Private class " + noun + " should be declared final."
}
