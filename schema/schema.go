package schema

import "github.com/elan-voss/schemalink/ident"

// Schema is a single parsed file: its import clauses followed by its
// struct/choice declarations, in source order.
type Schema struct {
	Imports      []*Import
	Declarations []*Declaration

	sealed bool
}

// NewSchema constructs a schema from its parsed imports and declarations.
func NewSchema(imports []*Import, declarations []*Declaration) *Schema {
	return &Schema{Imports: imports, Declarations: declarations}
}

// Seal marks the schema as fully loaded: all of its imports are expected
// to be resolved, and further structural mutation is a programming error.
// Sealing twice panics.
func (s *Schema) Seal() {
	if s.sealed {
		panic("schema: Seal called on an already-sealed schema")
	}
	s.sealed = true
}

// IsSealed reports whether [Schema.Seal] has been called.
func (s *Schema) IsSealed() bool {
	return s.sealed
}

// ImportByName returns the import bound to the given raw source name, if
// any. Prefer [Schema.ImportByIdent] for resolution: two raw spellings
// can name the same canonical identifier.
func (s *Schema) ImportByName(name string) (*Import, bool) {
	for _, imp := range s.Imports {
		if imp.RawName == name {
			return imp, true
		}
	}
	return nil, false
}

// ImportByIdent returns the import whose binding name is canonically
// equal to name, if any. This is how type-reference resolution looks up
// an import qualifier (spec.md §3: identifiers compare by segmented
// form, not exact spelling).
func (s *Schema) ImportByIdent(name ident.Identifier) (*Import, bool) {
	for _, imp := range s.Imports {
		if imp.Name.Equal(name) {
			return imp, true
		}
	}
	return nil, false
}

// DeclarationByName returns the first declaration with the given raw
// source name, if any. Prefer [Schema.DeclarationByIdent] for resolution:
// two raw spellings can name the same canonical identifier.
func (s *Schema) DeclarationByName(name string) (*Declaration, bool) {
	for _, d := range s.Declarations {
		if d.RawName == name {
			return d, true
		}
	}
	return nil, false
}

// DeclarationByIdent returns the first declaration whose name is
// canonically equal to name, if any. This is how type-reference
// resolution looks up a declaration (spec.md §3: identifiers compare by
// segmented form, not exact spelling).
func (s *Schema) DeclarationByIdent(name ident.Identifier) (*Declaration, bool) {
	for _, d := range s.Declarations {
		if d.Name.Equal(name) {
			return d, true
		}
	}
	return nil, false
}
