package schema

import (
	"github.com/elan-voss/schemalink/ident"
	"github.com/elan-voss/schemalink/srcrange"
)

// DeclKind distinguishes the two declaration shapes a schema can define.
type DeclKind uint8

const (
	// StructKind declares a product type: every field is present together.
	StructKind DeclKind = iota
	// ChoiceKind declares a sum type: exactly one field's payload is present.
	ChoiceKind
)

func (k DeclKind) String() string {
	switch k {
	case StructKind:
		return "struct"
	case ChoiceKind:
		return "choice"
	default:
		return "unknown"
	}
}

// Declaration is a named struct or choice, with its ordered fields.
type Declaration struct {
	Span srcrange.Range

	Kind DeclKind

	RawName string
	Name    ident.Identifier

	Fields []*Field
}

// NewDeclaration constructs a declaration. Fields are kept in source
// order; index uniqueness and name uniqueness are invariants the
// validator checks, not enforced here.
func NewDeclaration(kind DeclKind, rawName string, fields []*Field, span srcrange.Range) *Declaration {
	return &Declaration{
		Span:    span,
		Kind:    kind,
		RawName: rawName,
		Name:    ident.New(rawName),
		Fields:  fields,
	}
}

// FieldByName returns the first field with the given canonical name, if any.
func (d *Declaration) FieldByName(name ident.Identifier) (*Field, bool) {
	for _, f := range d.Fields {
		if f.Name.Equal(name) {
			return f, true
		}
	}
	return nil, false
}

// HasRestrictedFields reports whether any field is restricted — the
// condition under which a struct's In view has optional fields, or a
// choice's Out view has a variant with the fallback tuple tail.
func (d *Declaration) HasRestrictedFields() bool {
	for _, f := range d.Fields {
		if f.Restricted {
			return true
		}
	}
	return false
}
