package schema

import (
	"fmt"
	"sort"
)

// Entry pairs a loaded schema with its namespace and source provenance,
// kept around so diagnostics can cite the originating path and so source
// reconstruction (spec.md §9's round-trip property) has the original text.
type Entry struct {
	Namespace Namespace
	Schema    *Schema
	Path      string // the path the loader resolved the import to, or a synthetic "<string>" for string-sourced entries
	Text      string // the original source text
}

// Set is the closed, namespace-keyed collection of every schema reachable
// from an entry point — the loader's output and the validator's input.
type Set struct {
	entries map[string]*Entry
}

// NewSet constructs an empty schema set.
func NewSet() *Set {
	return &Set{entries: make(map[string]*Entry)}
}

// Add inserts a schema at the given namespace. It returns an error if the
// namespace is already occupied — every namespace in a set is unique by
// construction (spec.md §4.4), and a second insert signals a loader bug
// rather than a user-facing condition.
func (s *Set) Add(namespace Namespace, schema *Schema, path, text string) error {
	key := namespace.Key()
	if _, exists := s.entries[key]; exists {
		return fmt.Errorf("schema: namespace %s already present in set", namespace)
	}
	s.entries[key] = &Entry{Namespace: namespace, Schema: schema, Path: path, Text: text}
	return nil
}

// Get looks up the entry at a namespace.
func (s *Set) Get(namespace Namespace) (*Entry, bool) {
	e, ok := s.entries[namespace.Key()]
	return e, ok
}

// Len reports how many schemas the set holds.
func (s *Set) Len() int {
	return len(s.entries)
}

// Namespaces returns every namespace in the set, sorted.
func (s *Set) Namespaces() []Namespace {
	out := make([]Namespace, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Namespace)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Entries returns every entry in the set, ordered by namespace.
func (s *Set) Entries() []*Entry {
	namespaces := s.Namespaces()
	out := make([]*Entry, len(namespaces))
	for i, ns := range namespaces {
		out[i], _ = s.Get(ns)
	}
	return out
}
