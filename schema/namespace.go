package schema

import (
	"strings"

	"github.com/elan-voss/schemalink/ident"
)

// Namespace is a dotted path of identifiers locating a schema within a
// [Set] — e.g. the declaration root "basic.unit" in spec.md §8's worked
// examples. The root namespace has zero components.
type Namespace struct {
	components []ident.Identifier
}

// NewNamespace builds a namespace from its components, outermost first.
func NewNamespace(components ...ident.Identifier) Namespace {
	cp := make([]ident.Identifier, len(components))
	copy(cp, components)
	return Namespace{components: cp}
}

// Components returns the namespace's path segments, outermost first.
func (n Namespace) Components() []ident.Identifier {
	cp := make([]ident.Identifier, len(n.components))
	copy(cp, n.components)
	return cp
}

// Len reports the namespace's depth.
func (n Namespace) Len() int {
	return len(n.components)
}

// IsRoot reports whether this is the zero-depth root namespace.
func (n Namespace) IsRoot() bool {
	return len(n.components) == 0
}

// Join appends a component, returning a deeper namespace.
func (n Namespace) Join(component ident.Identifier) Namespace {
	cp := make([]ident.Identifier, len(n.components)+1)
	copy(cp, n.components)
	cp[len(n.components)] = component
	return Namespace{components: cp}
}

// Equal reports component-wise identifier equality.
func (n Namespace) Equal(other Namespace) bool {
	if len(n.components) != len(other.components) {
		return false
	}
	for i, c := range n.components {
		if !c.Equal(other.components[i]) {
			return false
		}
	}
	return true
}

// Compare orders namespaces lexicographically by component.
func (n Namespace) Compare(other Namespace) int {
	for i := 0; i < len(n.components) && i < len(other.components); i++ {
		if c := n.components[i].Compare(other.components[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(n.components) < len(other.components):
		return -1
	case len(n.components) > len(other.components):
		return 1
	default:
		return 0
	}
}

// Key returns a value suitable for use as a map key.
func (n Namespace) Key() string {
	parts := make([]string, len(n.components))
	for i, c := range n.components {
		parts[i] = c.Key()
	}
	return strings.Join(parts, "\x00")
}

// String renders the namespace in dotted snake_case form, e.g. "basic.unit".
func (n Namespace) String() string {
	parts := make([]string, len(n.components))
	for i, c := range n.components {
		parts[i] = c.SnakeCase()
	}
	return strings.Join(parts, ".")
}

// Relativize computes how to reach target from the perspective of current:
// the number of ancestor steps out of current, and the remaining path down
// into target, per spec.md §4.8's namespace-relativization rule (shared
// prefix trimmed, divergent suffix kept).
func Relativize(current, target Namespace) (ancestors int, remainder []ident.Identifier) {
	lcp := 0
	for lcp < len(current.components) && lcp < len(target.components) &&
		current.components[lcp].Equal(target.components[lcp]) {
		lcp++
	}
	ancestors = len(current.components) - lcp
	remainder = make([]ident.Identifier, len(target.components)-lcp)
	copy(remainder, target.components[lcp:])
	return ancestors, remainder
}
