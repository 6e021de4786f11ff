package emit

import (
	"fmt"
	"sort"

	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/schema"
)

// Module is one node of the namespace tree a [schema.Set] is assembled
// into: the root node (Name's zero value) represents the empty
// namespace, and each child corresponds to one path component. A node
// carries a schema only when some namespace in the set is exactly that
// node's path.
type Module struct {
	Name     ident.Identifier
	Entry    *schema.Entry // nil unless this node's namespace has a schema
	children map[string]*Module
}

// BuildTree assembles every entry in set into a single module tree,
// creating intermediate nodes as needed. It is an error (structurally
// unreachable once the set has passed validation, per spec.md §4.7) for
// two entries to land on the same node.
func BuildTree(set *schema.Set) (*Module, error) {
	root := &Module{children: make(map[string]*Module)}

	for _, entry := range set.Entries() {
		node := root
		for _, component := range entry.Namespace.Components() {
			node = node.child(component)
		}
		if node.Entry != nil {
			return nil, fmt.Errorf("emit: namespace %s already occupied in module tree", entry.Namespace)
		}
		node.Entry = entry
	}

	return root, nil
}

func (m *Module) child(name ident.Identifier) *Module {
	key := name.Key()
	child, ok := m.children[key]
	if !ok {
		child = &Module{Name: name, children: make(map[string]*Module)}
		m.children[key] = child
	}
	return child
}

// Children returns the node's direct children, sorted by identifier —
// spec.md §5's namespace-lexicographic emission order.
func (m *Module) Children() []*Module {
	out := make([]*Module, 0, len(m.children))
	for _, c := range m.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name.Compare(out[j].Name) < 0 })
	return out
}

// IsRoot reports whether this is the tree's root node.
func (m *Module) IsRoot() bool {
	return m.Name.IsZero()
}
