package swift

import (
	"sort"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// NodeKind classifies the syntax nodes this linter cares about. Everything
// that is not a class-like, protocol, function or property declaration maps
// to KindOther and is traversed transparently.
type NodeKind int

const (
	KindOther NodeKind = iota
	// KindClass covers class-like declarations: class, struct, enum and
	// actor share the class_declaration node type in the Swift grammar.
	KindClass
	KindProtocol
	KindFunction
	KindProperty
)

// KindOf maps a tree-sitter node type to its NodeKind
func KindOf(node *sitter.Node) NodeKind {
	switch node.Type() {
	case "class_declaration":
		return KindClass
	case "protocol_declaration":
		return KindProtocol
	case "function_declaration":
		return KindFunction
	case "property_declaration":
		return KindProperty
	default:
		return KindOther
	}
}

// Modifier is one declaration modifier keyword with its half-open byte
// range in the source. The range covers exactly the keyword, no trivia.
type Modifier struct {
	Name  string
	Start int
	End   int
}

// Modifiers extracts the ordered modifier list of a declaration node. The
// Swift grammar groups most declaration modifiers under a single
// "modifiers" child, but a class keyword that is a method's or property's
// only modifier is attached as an anonymous child of the declaration
// itself, so both places are scanned.
func Modifiers(node *sitter.Node, source []byte) []Modifier {
	var modifiers []Modifier
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(int(i))
		if child.Type() != "modifiers" {
			continue
		}
		for j := uint32(0); j < child.NamedChildCount(); j++ {
			mod := child.NamedChild(int(j))
			if mod.Type() == "attribute" {
				continue
			}
			modifiers = appendModifier(modifiers, mod, source)
		}
		break
	}

	switch KindOf(node) {
	case KindFunction, KindProperty:
		for i := uint32(0); i < node.ChildCount(); i++ {
			child := node.Child(int(i))
			if child.IsNamed() || child.Type() != "class" {
				continue
			}
			modifiers = appendModifier(modifiers, child, source)
		}
	}

	sort.Slice(modifiers, func(i, j int) bool {
		return modifiers[i].Start < modifiers[j].Start
	})
	return modifiers
}

// appendModifier adds the node's keyword to the modifier list, skipping
// duplicates of an already collected range.
func appendModifier(modifiers []Modifier, node *sitter.Node, source []byte) []Modifier {
	start, err := safecast.Conv[int](node.StartByte())
	if err != nil {
		return modifiers
	}
	end, err := safecast.Conv[int](node.EndByte())
	if err != nil {
		return modifiers
	}
	for _, m := range modifiers {
		if m.Start == start {
			return modifiers
		}
	}
	return append(modifiers, Modifier{
		Name:  node.Content(source),
		Start: start,
		End:   end,
	})
}

// HasModifier reports whether the modifier list contains the given keyword
func HasModifier(modifiers []Modifier, name string) bool {
	for _, m := range modifiers {
		if m.Name == name {
			return true
		}
	}
	return false
}

// FindModifier returns the first modifier with the given keyword
func FindModifier(modifiers []Modifier, name string) (Modifier, bool) {
	for _, m := range modifiers {
		if m.Name == name {
			return m, true
		}
	}
	return Modifier{}, false
}
